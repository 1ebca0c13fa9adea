package service

import (
	"edubridge_backend/internal/model"
	"edubridge_backend/internal/repository"
	"edubridge_backend/internal/util"

	"gorm.io/gorm"
)

// LectureService serves the lecture catalog with embed-ready video ids.
type LectureService struct {
	lectures *repository.LectureRepository
}

func NewLectureService(lectures *repository.LectureRepository) *LectureService {
	return &LectureService{lectures: lectures}
}

// LectureView is a lecture row plus the extracted YouTube id; VideoID is
// empty when the stored URL carries no recognizable id.
type LectureView struct {
	model.Lecture
	VideoID string `json:"videoId"`
}

func (s *LectureService) List() ([]LectureView, error) {
	lectures, err := s.lectures.FindAll()
	if err != nil {
		return nil, err
	}
	views := make([]LectureView, 0, len(lectures))
	for _, l := range lectures {
		views = append(views, LectureView{Lecture: l, VideoID: util.ExtractYouTubeID(l.VideoURL)})
	}
	return views, nil
}

func (s *LectureService) Get(id uint) (*LectureView, error) {
	l, err := s.lectures.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrLectureNotFound
		}
		return nil, err
	}
	return &LectureView{Lecture: *l, VideoID: util.ExtractYouTubeID(l.VideoURL)}, nil
}
