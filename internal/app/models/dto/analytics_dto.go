package dto

// BranchPlacementStats summarizes placement outcomes for one branch
type BranchPlacementStats struct {
	Branch  string  `json:"branch"`
	Total   int     `json:"total"`
	Placed  int     `json:"placed"`
	Percent float64 `json:"percent"`
	AvgCGPA float64 `json:"avgCgpa"`
}

// DriveFunnelStats summarizes the application funnel for one drive
type DriveFunnelStats struct {
	JobID        string `json:"jobId"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Applications int    `json:"applications"`
	Shortlisted  int    `json:"shortlisted"`
	Selected     int    `json:"selected"`
	Completed    bool   `json:"completed"`
}

// YearStats counts drives announced and students placed per calendar year
type YearStats struct {
	Year   int `json:"year"`
	Drives int `json:"drives"`
	Placed int `json:"placed"`
}

// AnalyticsResponse is the placement dashboard rollup
type AnalyticsResponse struct {
	TotalStudents  int                    `json:"totalStudents"`
	TotalPlaced    int                    `json:"totalPlaced"`
	PlacementRate  float64                `json:"placementRate"`
	TotalDrives    int                    `json:"totalDrives"`
	ActiveDrives   int                    `json:"activeDrives"`
	ByBranch       []BranchPlacementStats `json:"byBranch"`
	ByDrive        []DriveFunnelStats     `json:"byDrive"`
	DrivesByYear   []YearStats            `json:"drivesByYear"`
	PendingQueries int                    `json:"pendingQueries"`
}
