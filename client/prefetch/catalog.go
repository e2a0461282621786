package prefetch

import "fitconsole/pkg/models"

// Catalog is the static data behind the local-only domains.
type Catalog struct {
	Trainers      []models.Trainer
	Consultations []models.Consultation
	Branches      []models.Branch
	Users         []models.User
}

// DefaultCatalog returns the demo data shown by the local-only screens.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Trainers: []models.Trainer{
			{
				ID: 1, Name: "정우성", Phone: "010-1111-2222", Email: "ws.jung@fitconsole.kr", EmployeeID: "T001",
				Branch: "강남점", Department: "PT", Position: "수석 트레이너",
				Specialties: []string{"웨이트", "다이어트"}, Certifications: []string{"생활스포츠지도사 2급"},
				Experience: 8, Salary: 4200000, WorkingHours: "06:00-15:00", HireDate: "2018-03-02",
				Status: "재직", AssignedMembers: 24, Rating: 4.8,
			},
			{
				ID: 2, Name: "한지민", Phone: "010-3333-4444", Email: "jm.han@fitconsole.kr", EmployeeID: "T002",
				Branch: "홍대점", Department: "필라테스", Position: "트레이너",
				Specialties: []string{"필라테스", "재활"}, Certifications: []string{"필라테스 지도자"},
				Experience: 5, Salary: 3500000, WorkingHours: "13:00-22:00", HireDate: "2021-07-15",
				Status: "재직", AssignedMembers: 18, Rating: 4.6,
			},
			{
				ID: 3, Name: "오승환", Phone: "010-5555-6666", Email: "sh.oh@fitconsole.kr", EmployeeID: "T003",
				Branch: "강남점", Department: "PT", Position: "트레이너",
				Specialties: []string{"크로스핏"}, Certifications: []string{"크로스핏 L1"},
				Experience: 3, Salary: 3100000, WorkingHours: "15:00-23:00", HireDate: "2023-01-09",
				Status: "휴직", AssignedMembers: 0, Rating: 4.3,
			},
		},
		Consultations: []models.Consultation{
			{
				ID: 1, MemberID: 1, MemberName: "김민수", TrainerID: 1, TrainerName: "정우성",
				ConsultationDate: "2024-08-23", ConsultationTime: "10:00", Duration: 30,
				Type: "대면", Category: "PT 상담", Goals: "체지방 감량", Notes: "주 3회 희망",
				Satisfaction: 5, FollowUpRequired: true,
			},
			{
				ID: 2, MemberID: 2, MemberName: "이수진", TrainerID: 2, TrainerName: "한지민",
				ConsultationDate: "2024-08-22", ConsultationTime: "19:30", Duration: 45,
				Type: "대면", Category: "필라테스 상담", Goals: "자세 교정", Notes: "허리 통증 있음",
				Satisfaction: 4, FollowUpRequired: false,
			},
		},
		Branches: []models.Branch{
			{
				ID: 1, Name: "강남점", Address: "서울시 강남구 테헤란로 123", Phone: "02-555-1234",
				Manager: "김지점", OperatingHours: "06:00-24:00", Status: "운영중", OpenDate: "2019-05-01",
				Members: 842, Revenue: 48500000, TodayVisits: 312, Facilities: []string{"헬스", "GX룸", "사우나"}, Staff: 14,
			},
			{
				ID: 2, Name: "홍대점", Address: "서울시 마포구 양화로 45", Phone: "02-333-5678",
				Manager: "박지점", OperatingHours: "06:00-23:00", Status: "운영중", OpenDate: "2021-02-15",
				Members: 516, Revenue: 29800000, TodayVisits: 187, Facilities: []string{"헬스", "필라테스룸"}, Staff: 9,
			},
		},
		Users: []models.User{
			{ID: 1, Name: "관리자", Email: "admin@fitconsole.kr", Role: "최고관리자", Branch: "전체", Permissions: []string{"all"}, Status: "활성", LastLogin: "2024-08-23 09:12"},
			{ID: 2, Name: "김지점", Email: "gangnam@fitconsole.kr", Role: "지점관리자", Branch: "강남점", Permissions: []string{"members", "payments", "access"}, Status: "활성", LastLogin: "2024-08-22 18:40"},
		},
	}
}
