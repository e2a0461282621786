package prefetch

// Domain is one slice of the cached console data.
type Domain string

const (
	DashboardStats Domain = "dashboardStats"
	Members        Domain = "members"
	Trainers       Domain = "trainers"
	Consultations  Domain = "consultations"
	Payments       Domain = "payments"
	AccessLogs     Domain = "accessLogs"
	Branches       Domain = "branches"
	Users          Domain = "users"
)

// AllDomains in display order.
var AllDomains = []Domain{DashboardStats, Members, Trainers, Consultations, Payments, AccessLogs, Branches, Users}

// Kind tells where a domain's data comes from.
type Kind int

const (
	// Remote domains are fetched from the API.
	Remote Kind = iota
	// LocalOnly domains are filled from the static catalog, without I/O.
	LocalOnly
)

func (k Kind) String() string {
	if k == LocalOnly {
		return "local-only"
	}
	return "remote"
}

// Kind of the domain.
func (d Domain) Kind() Kind {
	switch d {
	case Trainers, Consultations, Branches, Users:
		return LocalOnly
	default:
		return Remote
	}
}

// Page is a console screen.
type Page string

const (
	PageDashboard     Page = "dashboard"
	PageMembers       Page = "members"
	PageTrainers      Page = "trainers"
	PageConsultations Page = "consultations"
	PagePayments      Page = "payments"
	PageAccess        Page = "access"
	PageBranches      Page = "branches"
	PageSettings      Page = "settings"
)

// Domains each page needs before it can render.
var pageDomains = map[Page][]Domain{
	PageDashboard:     {DashboardStats, AccessLogs},
	PageMembers:       {Members},
	PageTrainers:      {Trainers},
	PageConsultations: {Consultations},
	PagePayments:      {Payments},
	PageAccess:        {AccessLogs},
	PageBranches:      {Branches},
	PageSettings:      {Users},
}

// DomainsOf returns the domains loaded for the page, false for unknown pages.
func DomainsOf(page Page) ([]Domain, bool) {
	domains, ok := pageDomains[page]
	return domains, ok
}

// Domains replaced by a seed.
var seedDomains = []Domain{DashboardStats, Members, Payments, AccessLogs}
