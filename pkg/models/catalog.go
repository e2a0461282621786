package models

// Trainer employed by a branch.
type Trainer struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Phone           string   `json:"phone"`
	Email           string   `json:"email"`
	EmployeeID      string   `json:"employeeId"`
	Branch          string   `json:"branch"`
	Department      string   `json:"department"`
	Position        string   `json:"position"`
	Specialties     []string `json:"specialties"`
	Certifications  []string `json:"certifications"`
	Experience      int      `json:"experience"`
	Salary          int64    `json:"salary"`
	WorkingHours    string   `json:"workingHours"`
	HireDate        string   `json:"hireDate"`
	Status          string   `json:"status"`
	AssignedMembers int      `json:"assignedMembers"`
	Rating          float64  `json:"rating"`
}

// Consultation between a member and a trainer.
type Consultation struct {
	ID               int    `json:"id"`
	MemberID         int    `json:"memberId"`
	MemberName       string `json:"memberName"`
	TrainerID        int    `json:"trainerId"`
	TrainerName      string `json:"trainerName"`
	ConsultationDate string `json:"consultationDate"`
	ConsultationTime string `json:"consultationTime"`
	Duration         int    `json:"duration"`
	Type             string `json:"type"`
	Category         string `json:"category"`
	Goals            string `json:"goals"`
	Notes            string `json:"notes"`
	Satisfaction     int    `json:"satisfaction"`
	FollowUpRequired bool   `json:"followUpRequired"`
}

// Branch of the club.
type Branch struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	Phone          string   `json:"phone"`
	Manager        string   `json:"manager"`
	OperatingHours string   `json:"operatingHours"`
	Status         string   `json:"status"`
	OpenDate       string   `json:"openDate"`
	Members        int      `json:"members"`
	Revenue        int64    `json:"revenue"`
	TodayVisits    int      `json:"todayVisits"`
	Facilities     []string `json:"facilities"`
	Staff          int      `json:"staff"`
}

// User of the console itself.
type User struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Branch      string   `json:"branch"`
	Permissions []string `json:"permissions"`
	Status      string   `json:"status"`
	LastLogin   string   `json:"lastLogin"`
}
