package database

import (
	"fmt"
	"log"
	"time"

	"edubridge_backend/internal/config"
	"edubridge_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
		cfg.Database.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	// Migrations run automatically outside release mode; in release they
	// require the explicit -migrate flag.
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		err = db.AutoMigrate(
			&model.User{},
			&model.Skill{},
			&model.Assignment{},
			&model.AssignmentSubmission{},
			&model.Lecture{},
			&model.Post{},
			&model.Comment{},
			&model.PostUpvote{},
			&model.ChatMessage{},
			&model.Candidate{},
			&model.Portfolio{},
			&model.InterviewQuestion{},
			&model.JobApplication{},
		)

		if err != nil {
			return nil, err
		}

		log.Println("Database migration completed")

		seedReferenceData(db)
	}

	return db, nil
}

// seedReferenceData fills empty reference tables on first boot. Each block
// only fires when its table is empty, so reruns are harmless.
func seedReferenceData(db *gorm.DB) {
	var count int64

	db.Model(&model.InterviewQuestion{}).Count(&count)
	if count == 0 {
		for _, q := range defaultInterviewQuestions() {
			db.Create(&q)
		}
	}

	db.Model(&model.Assignment{}).Count(&count)
	if count == 0 {
		for _, a := range defaultAssignments() {
			db.Create(&a)
		}
	}

	db.Model(&model.Lecture{}).Count(&count)
	if count == 0 {
		for _, l := range defaultLectures() {
			db.Create(&l)
		}
	}

	db.Model(&model.Candidate{}).Count(&count)
	if count == 0 {
		for _, c := range defaultCandidates() {
			db.Create(&c)
		}
	}

	// Demo student used by the signin flow.
	db.Model(&model.User{}).Where("email = ?", "student@demo.com").Count(&count)
	if count == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
		if err == nil {
			db.Create(&model.User{
				Name:     "Demo Student",
				Email:    "student@demo.com",
				Password: string(hashed),
				Role:     model.Student,
			})
		}
	}
}

func defaultInterviewQuestions() []model.InterviewQuestion {
	return []model.InterviewQuestion{
		{
			Role:         "Data Scientist",
			Company:      "KBZ Bank",
			Question:     "How would you use data to improve customer retention for a digital wallet like KBZPay?",
			Keywords:     "data analysis,customer behavior,churn prediction,machine learning,retention",
			SampleAnswer: "I would analyze transaction patterns, identify at-risk customers using churn prediction models, and recommend personalized offers.",
		},
		{
			Role:         "Data Scientist",
			Company:      "MPT",
			Question:     "Explain your experience with SQL and data cleaning for local datasets. How would you handle Myanmar language text data?",
			Keywords:     "SQL,data cleaning,Myanmar text,Unicode,preprocessing",
			SampleAnswer: "I have experience with SQL queries for large datasets and would use proper Unicode encoding for Myanmar text.",
		},
		{
			Role:         "Data Scientist",
			Company:      "Wave Money",
			Question:     "How would you build a fraud detection system for mobile money transactions in Myanmar?",
			Keywords:     "fraud detection,anomaly detection,real-time,machine learning,security",
			SampleAnswer: "I would use anomaly detection algorithms to identify suspicious transaction patterns in real-time.",
		},
		{
			Role:         "Data Scientist",
			Company:      "NexLabs",
			Question:     "Describe a data visualization project you have done. How would you present insights to non-technical stakeholders?",
			Keywords:     "visualization,dashboard,insights,storytelling,Tableau,PowerBI",
			SampleAnswer: "I would create interactive dashboards and translate technical findings into business impact.",
		},
		{
			Role:         "Data Scientist",
			Company:      "KBZ Bank",
			Question:     "How would you approach building a credit scoring model for underserved customers in Myanmar?",
			Keywords:     "credit scoring,alternative data,financial inclusion,model building,fairness",
			SampleAnswer: "I would use alternative data sources and ensure fairness in the model to promote financial inclusion.",
		},
		{
			Role:         "Web Developer",
			Company:      "MPT",
			Question:     "How do you optimize web performance for users with limited internet speeds in rural areas of Myanmar?",
			Keywords:     "performance,lazy loading,CDN,compression,offline,PWA",
			SampleAnswer: "I would implement lazy loading, code splitting, PWA for offline support, and use CDN for faster delivery.",
		},
		{
			Role:         "Web Developer",
			Company:      "Ooredoo",
			Question:     "Explain the differences between state management tools like Redux vs. Context API. When would you use each?",
			Keywords:     "Redux,Context API,state management,React,performance",
			SampleAnswer: "Context API is great for simple state, while Redux is better for complex global state with middleware.",
		},
		{
			Role:         "Web Developer",
			Company:      "NexLabs",
			Question:     "How would you build a responsive web application that works well on low-end Android devices popular in Myanmar?",
			Keywords:     "responsive,performance,mobile-first,lightweight,testing",
			SampleAnswer: "I would use mobile-first design, minimize bundle size, and test on real low-end devices.",
		},
		{
			Role:         "Web Developer",
			Company:      "KBZ Bank",
			Question:     "Describe your experience with frontend security. How do you protect against XSS and CSRF attacks?",
			Keywords:     "security,XSS,CSRF,authentication,sanitization",
			SampleAnswer: "I would sanitize user input, use secure headers, and implement proper authentication tokens.",
		},
		{
			Role:         "Web Developer",
			Company:      "Wave Money",
			Question:     "How would you implement real-time features for a payment dashboard using modern web technologies?",
			Keywords:     "WebSocket,real-time,React,Socket.io,optimistic updates",
			SampleAnswer: "I would use WebSocket for real-time updates with optimistic UI updates for better UX.",
		},
	}
}

func defaultAssignments() []model.Assignment {
	due := func(days int) *time.Time {
		t := time.Now().AddDate(0, 0, days)
		return &t
	}
	return []model.Assignment{
		{Title: "Business Case Analysis", Course: "Business Analytics", Description: "Analyze the provided startup case study and submit a written recommendation.", DueDate: due(7)},
		{Title: "Python Data Cleaning Exercise", Course: "Data Science Fundamentals", Description: "Clean the provided dataset and document each transformation step.", DueDate: due(10)},
		{Title: "Responsive Landing Page", Course: "Web Development", Description: "Build a mobile-first landing page for a local business.", DueDate: due(14)},
		{Title: "SQL Query Workbook", Course: "Databases", Description: "Complete the query workbook against the sample commerce schema.", DueDate: due(21)},
	}
}

func defaultLectures() []model.Lecture {
	return []model.Lecture{
		{Title: "Introduction to Data Science", Description: "What data science is and where it is used in Myanmar's tech sector.", Instructor: "Dr. Thandar Win", VideoURL: "https://www.youtube.com/watch?v=ua-CiDNNj30", Duration: "45 min", Category: "Data Science"},
		{Title: "Python Basics for Analytics", Description: "Variables, control flow and working with tabular data.", Instructor: "U Kyaw Min", VideoURL: "https://youtu.be/rfscVS0vtbw", Duration: "60 min", Category: "Data Science"},
		{Title: "Modern Web Development", Description: "Component-driven frontends and the tooling around them.", Instructor: "Daw Ei Phyu", VideoURL: "https://www.youtube.com/watch?v=nu_pCVPKzTk", Duration: "50 min", Category: "Web Development"},
		{Title: "Business Analytics in Practice", Description: "Turning raw numbers into decisions for growing startups.", Instructor: "Dr. Thandar Win", VideoURL: "https://www.youtube.com/watch?v=diaZdX1s5L4", Duration: "40 min", Category: "Business"},
	}
}

func defaultCandidates() []model.Candidate {
	return []model.Candidate{
		{Name: "Aung Myat", Role: "Data Scientist", Skills: "Python, SQL, Machine Learning, Tableau", MatchScore: 92, Experience: "3 years", Summary: "Built churn models for a mobile wallet provider.", Location: "Yangon, Myanmar"},
		{Name: "Su Su Hlaing", Role: "Web Developer", Skills: "React, TypeScript, Node.js", MatchScore: 88, Experience: "2 years", Summary: "Frontend engineer focused on low-bandwidth optimization.", Location: "Mandalay, Myanmar"},
		{Name: "Min Thu", Role: "Full Stack Developer", Skills: "JavaScript, Go, PostgreSQL", MatchScore: 84, Experience: "4 years", Summary: "Delivered payment dashboards end to end.", Location: "Yangon, Myanmar"},
		{Name: "Khin Zar", Role: "Data Analyst", Skills: "SQL, PowerBI, Excel", MatchScore: 77, Experience: "1 year", Summary: "Reporting and visualization for a telecom operator.", Location: "Remote (Myanmar)"},
	}
}
