package models

// Role defines the user role type
type Role string

const (
	RoleStudent       Role = "STUDENT"
	RoleProfessor     Role = "PROFESSOR"
	RoleAdministrator Role = "ADMINISTRATOR"
)

// AllRoles lists every role in catalog order.
var AllRoles = []Role{RoleStudent, RoleProfessor, RoleAdministrator}

// IsValid reports whether the role is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleProfessor, RoleAdministrator:
		return true
	}
	return false
}

// Season represents the season of an academic term
type Season string

const (
	SeasonFall   Season = "FALL"
	SeasonWinter Season = "WINTER"
	SeasonSpring Season = "SPRING"
	SeasonSummer Season = "SUMMER"
)

var AllSeasons = []Season{SeasonFall, SeasonWinter, SeasonSpring, SeasonSummer}

func (s Season) IsValid() bool {
	switch s {
	case SeasonFall, SeasonWinter, SeasonSpring, SeasonSummer:
		return true
	}
	return false
}

// Department identifies the academic department offering a course.
// Values (including the historical misspellings) are wire-visible and must
// stay as-is.
type Department string

const (
	DeptArtHistory     Department = "ART_HISTORY"
	DeptBiology        Department = "BIOLOGY"
	DeptChemistry      Department = "CHEMISTRY"
	DeptClassicalStud  Department = "CLASSICAL_STUDIES"
	DeptCommunication  Department = "COMMUNICATION"
	DeptComputerSci    Department = "COMPUTER_SCIENCE"
	DeptEconomics      Department = "ECONOMICS"
	DeptEducation      Department = "EDUCATION"
	DeptEngineeringSci Department = "ENGINEERING_SCIENCE"
	DeptEnglish        Department = "ENGLISH"
	DeptGeosciences    Department = "GEOSCIENCES"
	DeptHealthCareAdm  Department = "HEALTH_CARE_ADMINISTRATION"
	DeptHistory        Department = "HISTORY"
	DeptMathmatics     Department = "MATHMATICS"
	DeptMusic          Department = "MUSIC"
	DeptPhillosophy    Department = "PHILLOSOPHY"
)

var AllDepartments = []Department{
	DeptArtHistory,
	DeptBiology,
	DeptChemistry,
	DeptClassicalStud,
	DeptCommunication,
	DeptComputerSci,
	DeptEconomics,
	DeptEducation,
	DeptEngineeringSci,
	DeptEnglish,
	DeptGeosciences,
	DeptHealthCareAdm,
	DeptHistory,
	DeptMathmatics,
	DeptMusic,
	DeptPhillosophy,
}

func (d Department) IsValid() bool {
	for _, known := range AllDepartments {
		if d == known {
			return true
		}
	}
	return false
}

// DayOfWeek represents a weekday in a meeting schedule
type DayOfWeek string

const (
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
	Sunday    DayOfWeek = "SUNDAY"
)

var AllDaysOfWeek = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func (d DayOfWeek) IsValid() bool {
	for _, known := range AllDaysOfWeek {
		if d == known {
			return true
		}
	}
	return false
}
