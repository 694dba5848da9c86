package models

import "time"

const (
	RoleAdmin     = "admin"
	RoleDeveloper = "developer"
	RoleManager   = "manager"
	RoleGuest     = "guest"
)

const (
	CommitStatusSuccess = "success"
	CommitStatusFailed  = "failed"
	CommitStatusPending = "pending"
)

const (
	PipelineStatusRunning  = "running"
	PipelineStatusSuccess  = "success"
	PipelineStatusFailed   = "failed"
	PipelineStatusCanceled = "canceled"
)

const (
	EnvironmentDevelopment = "development"
	EnvironmentStaging     = "staging"
	EnvironmentProduction  = "production"
)

const (
	IntegrationStatusActive   = "active"
	IntegrationStatusInactive = "inactive"
	IntegrationStatusError    = "error"
)

const (
	IntegrationTypeMonitoring    = "monitoring"
	IntegrationTypeCICD          = "ci-cd"
	IntegrationTypeCommunication = "communication"
	IntegrationTypeAnalytics     = "analytics"
	IntegrationTypeCloud         = "cloud"
	IntegrationTypeSecurity      = "security"
)

const (
	MemberStatusActive   = "active"
	MemberStatusAway     = "away"
	MemberStatusInactive = "inactive"
)

const (
	WorkflowStatusSuccess = "success"
	WorkflowStatusRunning = "running"
	WorkflowStatusFailed  = "failed"
	WorkflowStatusWarning = "warning"
)

type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Avatar     string    `json:"avatar"`
	Role       string    `json:"role"` // "admin", "developer", "manager", "guest"
	CreatedAt  time.Time `json:"created_at"`
	LastActive time.Time `json:"last_active"`
	Teams      []string  `json:"teams"`
	RepoAccess []string  `json:"repo_access"`
}

type Role struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

type Team struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

type Repo struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Language     string    `json:"language"`
	Stars        int       `json:"stars"`
	Forks        int       `json:"forks"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Owner        string    `json:"owner"`
	Contributors []string  `json:"contributors"`
	Private      bool      `json:"private"`
	Tags         []string  `json:"tags"`
	URL          string    `json:"url"`
	Connected    bool      `json:"connected"`
	Issues       int       `json:"issues"`
}

type Branch struct {
	ID        string `json:"id"`
	RepoID    string `json:"repo_id"`
	Name      string `json:"name"`
	IsDefault bool   `json:"is_default"`
}

type Commit struct {
	ID           string    `json:"id"`
	Hash         string    `json:"hash"`
	Message      string    `json:"message"`
	AuthorID     string    `json:"author_id"`
	RepoID       string    `json:"repo_id"`
	BranchID     string    `json:"branch_id"`
	CreatedAt    time.Time `json:"created_at"`
	FilesChanged int       `json:"files_changed"`
	Additions    int       `json:"additions"`
	Deletions    int       `json:"deletions"`
	Status       string    `json:"status"`             // "success", "failed", "pending"
	PipelineID   string    `json:"pipeline,omitempty"` // pipeline triggered by this commit, if any
}

type PipelineStage struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Status     string     `json:"status"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	Duration   int        `json:"duration"` // seconds
}

type Pipeline struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	RepoID      string          `json:"repo_id"`
	CommitID    string          `json:"commit_id,omitempty"`
	Status      string          `json:"status"` // "running", "success", "failed", "canceled"
	StartedAt   time.Time       `json:"started_at"`
	FinishedAt  *time.Time      `json:"finished_at,omitempty"`
	Duration    int             `json:"duration"` // seconds, 0 while running
	TriggeredBy string          `json:"triggered_by"`
	Environment string          `json:"environment"`
	Stages      []PipelineStage `json:"stages"`
}

type Integration struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	Type               string         `json:"type"`
	Status             string         `json:"status"` // "active", "inactive", "error"
	ConnectedAt        time.Time      `json:"connected_at"`
	LastSyncAt         time.Time      `json:"last_sync_at"`
	ConnectionStrength int            `json:"connection_strength"` // 0..100
	Logo               string         `json:"logo"`
	ConnectedRepos     []string       `json:"connected_repos"`
	ConnectedBy        string         `json:"connected_by"`
	Settings           map[string]any `json:"settings,omitempty"`
}

// Member is an entry of the people directory. Role and LastActive are display labels.
type Member struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
	LastActive string `json:"last_active"`
	Status     string `json:"status"` // "active", "away", "inactive"
}

type QAStatus struct {
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// Workflow is an entry of the workflow catalog shown on the pipelines page.
type Workflow struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Status         string   `json:"status"`
	LastRunTime    string   `json:"last_run_time"`
	LastRunBy      string   `json:"last_run_by"`
	Type           string   `json:"type"`
	Description    string   `json:"description"`
	AverageRuntime string   `json:"average_runtime"`
	SuccessRate    int      `json:"success_rate"` // 0..100
	QA             QAStatus `json:"qa_status"`
}

// Connector is a service that can be connected from the integrations page.
type Connector struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Connected   bool   `json:"connected"`
	Color       string `json:"color"`
}

func IsRole(role string) bool {
	switch role {
	case RoleAdmin, RoleDeveloper, RoleManager, RoleGuest:
		return true
	default:
		return false
	}
}

func IsCommitStatus(status string) bool {
	switch status {
	case CommitStatusSuccess, CommitStatusFailed, CommitStatusPending:
		return true
	default:
		return false
	}
}

func IsPipelineStatus(status string) bool {
	switch status {
	case PipelineStatusRunning, PipelineStatusSuccess, PipelineStatusFailed, PipelineStatusCanceled:
		return true
	default:
		return false
	}
}

func IsEnvironment(env string) bool {
	switch env {
	case EnvironmentDevelopment, EnvironmentStaging, EnvironmentProduction:
		return true
	default:
		return false
	}
}

func IsIntegrationStatus(status string) bool {
	switch status {
	case IntegrationStatusActive, IntegrationStatusInactive, IntegrationStatusError:
		return true
	default:
		return false
	}
}

func IsIntegrationType(kind string) bool {
	switch kind {
	case IntegrationTypeMonitoring, IntegrationTypeCICD, IntegrationTypeCommunication,
		IntegrationTypeAnalytics, IntegrationTypeCloud, IntegrationTypeSecurity:
		return true
	default:
		return false
	}
}

func IsMemberStatus(status string) bool {
	switch status {
	case MemberStatusActive, MemberStatusAway, MemberStatusInactive:
		return true
	default:
		return false
	}
}

func IsWorkflowStatus(status string) bool {
	switch status {
	case WorkflowStatusSuccess, WorkflowStatusRunning, WorkflowStatusFailed, WorkflowStatusWarning:
		return true
	default:
		return false
	}
}
