package service

import (
	"edubridge_backend/internal/model"
	"edubridge_backend/internal/repository"
	"edubridge_backend/internal/util"

	"gorm.io/gorm"
)

// UserService covers profile reads/updates and the student skill list.
type UserService struct {
	users  *repository.UserRepository
	skills *repository.SkillRepository
}

func NewUserService(users *repository.UserRepository, skills *repository.SkillRepository) *UserService {
	return &UserService{users: users, skills: skills}
}

type UpdateProfileRequest struct {
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Headline string `json:"headline"`
}

func (s *UserService) Get(userID uint) (*model.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateProfile(userID uint, req *UpdateProfileRequest) (*model.User, error) {
	user, err := s.Get(userID)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}
	if req.Headline != "" {
		user.Headline = req.Headline
	}
	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

type SkillRequest struct {
	Name   string            `json:"name" binding:"required"`
	Level  model.SkillLevel  `json:"level" binding:"required,oneof=Beginner Intermediate Advanced Expert"`
	Source model.SkillSource `json:"source" binding:"omitempty,oneof=ai manual"`
}

func (s *UserService) Skills(userID uint) ([]model.Skill, error) {
	return s.skills.FindByUser(userID)
}

func (s *UserService) AddSkill(userID uint, req *SkillRequest) (*model.Skill, error) {
	source := req.Source
	if source == "" {
		source = model.SkillSourceManual
	}
	skill := &model.Skill{
		UserID: userID,
		Name:   req.Name,
		Level:  req.Level,
		Source: source,
	}
	if err := s.skills.Create(skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (s *UserService) RemoveSkill(userID, skillID uint) error {
	return s.skills.Delete(userID, skillID)
}
