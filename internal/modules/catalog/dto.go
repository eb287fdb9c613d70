package catalog

// Requests mirror the dashboard forms: only presence is validated here,
// free-text time and duration stay exactly as typed. Enum fields are
// checked in the service so a bad value maps to a clean 400.

type ClassRequest struct {
	Name            string   `json:"name" binding:"required"`
	Description     string   `json:"description"`
	Instructor      string   `json:"instructor"`
	Day             string   `json:"day" binding:"required"`
	Time            string   `json:"time" binding:"required"`
	Duration        string   `json:"duration"`
	Location        string   `json:"location"`
	Level           string   `json:"level" binding:"required"`
	MaxStudents     int      `json:"max_students"`
	CurrentStudents int      `json:"current_students"`
	IsActive        *bool    `json:"is_active"`
	Price           *float64 `json:"price"`
}

type EventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Location    string `json:"location"`
	City        string `json:"city"`
	State       string `json:"state"`
	Type        string `json:"type" binding:"required"`
}

type WorkshopRequest struct {
	Title               string   `json:"title" binding:"required"`
	Description         string   `json:"description"`
	Instructor          string   `json:"instructor"`
	Date                string   `json:"date" binding:"required"`
	Time                string   `json:"time" binding:"required"`
	Duration            string   `json:"duration"`
	Location            string   `json:"location"`
	Level               string   `json:"level" binding:"required"`
	MaxParticipants     int      `json:"max_participants"`
	CurrentParticipants int      `json:"current_participants"`
	Price               *float64 `json:"price"`
}

type PackageRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	Price           float64 `json:"price" binding:"required"`
	NumberOfClasses int     `json:"number_of_classes" binding:"required"`
	ValidityDays    int     `json:"validity_days" binding:"required"`
	IsActive        *bool   `json:"is_active"`
	ClassIDs        []int64 `json:"class_ids"`
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// DashboardCounts is the landing-page summary.
type DashboardCounts struct {
	Classes   int64 `json:"classes"`
	Events    int64 `json:"events"`
	Workshops int64 `json:"workshops"`
	Packages  int64 `json:"packages"`
}
