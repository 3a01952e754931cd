package domain

// DashboardStats summarizes workload counts for the dashboard.
type DashboardStats struct {
	TotalClients    int `json:"totalClients"`
	TotalProcesses  int `json:"totalProcesses"`
	TotalTasks      int `json:"totalTasks"`
	PendingTasks    int `json:"pendingTasks"`
	ActiveProcesses int `json:"activeProcesses"`
}
