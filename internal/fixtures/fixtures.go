// Package fixtures provides the built-in sample data the dashboard ships with.
// Every accessor returns a fresh copy.
package fixtures

import (
	"time"

	"github.com/odvcencio/maestro/internal/catalog"
	"github.com/odvcencio/maestro/internal/models"
)

// Dataset returns the sample dataset. It satisfies catalog.Dataset.Validate.
func Dataset() catalog.Dataset {
	return catalog.Dataset{
		Users:        users(),
		Roles:        roles(),
		Teams:        teams(),
		Repos:        repos(),
		Branches:     branches(),
		Commits:      commits(),
		Pipelines:    pipelines(),
		Integrations: integrations(),
	}
}

func ts(raw string) time.Time {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		panic("fixtures: bad timestamp " + raw)
	}
	return t.UTC()
}

func tsp(raw string) *time.Time {
	t := ts(raw)
	return &t
}

func users() []models.User {
	return []models.User{
		{
			ID:         "u1",
			Name:       "Alex Morgan",
			Email:      "alex@example.com",
			Avatar:     "https://i.pravatar.cc/150?u=alex",
			Role:       models.RoleAdmin,
			CreatedAt:  ts("2024-01-15T09:24:38Z"),
			LastActive: ts("2025-06-07T15:30:22Z"),
			Teams:      []string{"core", "infrastructure"},
			RepoAccess: []string{"r1", "r2", "r3", "r4", "r5"},
		},
		{
			ID:         "u2",
			Name:       "Jamie Chen",
			Email:      "jamie@example.com",
			Avatar:     "https://i.pravatar.cc/150?u=jamie",
			Role:       models.RoleDeveloper,
			CreatedAt:  ts("2024-02-10T14:38:12Z"),
			LastActive: ts("2025-06-07T16:45:18Z"),
			Teams:      []string{"frontend", "mobile"},
			RepoAccess: []string{"r1", "r3", "r5"},
		},
		{
			ID:         "u3",
			Name:       "Taylor Swift",
			Email:      "taylor@example.com",
			Avatar:     "https://i.pravatar.cc/150?u=taylor",
			Role:       models.RoleDeveloper,
			CreatedAt:  ts("2024-03-05T11:12:45Z"),
			LastActive: ts("2025-06-06T12:15:32Z"),
			Teams:      []string{"backend", "data"},
			RepoAccess: []string{"r2", "r4"},
		},
		{
			ID:         "u4",
			Name:       "Robin Das",
			Email:      "robin@example.com",
			Avatar:     "https://i.pravatar.cc/150?u=robin",
			Role:       models.RoleManager,
			CreatedAt:  ts("2024-01-20T08:34:19Z"),
			LastActive: ts("2025-06-07T14:22:56Z"),
			Teams:      []string{"infrastructure", "security"},
			RepoAccess: []string{"r1", "r2", "r3", "r4", "r5"},
		},
		{
			ID:         "u5",
			Name:       "Jordan Smith",
			Email:      "jordan@example.com",
			Avatar:     "https://i.pravatar.cc/150?u=jordan",
			Role:       models.RoleGuest,
			CreatedAt:  ts("2024-05-12T16:48:33Z"),
			LastActive: ts("2025-06-05T09:11:47Z"),
			Teams:      []string{"frontend"},
			RepoAccess: []string{"r3"},
		},
	}
}

func roles() []models.Role {
	return []models.Role{
		{ID: models.RoleAdmin, Name: "Administrator", Permissions: []string{"read", "write", "deploy", "settings", "billing", "user-management"}},
		{ID: models.RoleDeveloper, Name: "Developer", Permissions: []string{"read", "write", "deploy"}},
		{ID: models.RoleManager, Name: "Project Manager", Permissions: []string{"read", "settings", "billing"}},
		{ID: models.RoleGuest, Name: "Guest User", Permissions: []string{"read"}},
	}
}

func teams() []models.Team {
	return []models.Team{
		{ID: "core", Name: "Core Team", Members: []string{"u1", "u4"}},
		{ID: "frontend", Name: "Frontend Team", Members: []string{"u2", "u5"}},
		{ID: "backend", Name: "Backend Team", Members: []string{"u3"}},
		{ID: "mobile", Name: "Mobile Team", Members: []string{"u2"}},
		{ID: "infrastructure", Name: "Infrastructure Team", Members: []string{"u1", "u4"}},
		{ID: "data", Name: "Data Team", Members: []string{"u3"}},
		{ID: "security", Name: "Security Team", Members: []string{"u4"}},
	}
}

func repos() []models.Repo {
	return []models.Repo{
		{
			ID:           "r1",
			Name:         "frontend-app",
			Description:  "Main frontend application using React and TypeScript",
			Language:     "TypeScript",
			Stars:        48,
			Forks:        12,
			CreatedAt:    ts("2024-01-20T10:15:22Z"),
			UpdatedAt:    ts("2025-06-06T14:45:33Z"),
			Owner:        "u1",
			Contributors: []string{"u1", "u2", "u4"},
			Private:      false,
			Tags:         []string{"react", "typescript", "frontend"},
			URL:          "https://github.com/org/frontend-app",
			Connected:    true,
			Issues:       15,
		},
		{
			ID:           "r2",
			Name:         "api-service",
			Description:  "Backend API service with Node.js and Express",
			Language:     "JavaScript",
			Stars:        32,
			Forks:        8,
			CreatedAt:    ts("2024-01-22T09:12:34Z"),
			UpdatedAt:    ts("2025-06-07T11:22:45Z"),
			Owner:        "u1",
			Contributors: []string{"u1", "u3", "u4"},
			Private:      true,
			Tags:         []string{"nodejs", "express", "api", "backend"},
			URL:          "https://github.com/org/api-service",
			Connected:    true,
			Issues:       8,
		},
		{
			ID:           "r3",
			Name:         "mobile-app",
			Description:  "Mobile application with React Native",
			Language:     "TypeScript",
			Stars:        28,
			Forks:        6,
			CreatedAt:    ts("2024-01-28T14:35:22Z"),
			UpdatedAt:    ts("2025-06-05T09:34:12Z"),
			Owner:        "u2",
			Contributors: []string{"u1", "u2", "u5"},
			Private:      false,
			Tags:         []string{"react-native", "mobile", "typescript"},
			URL:          "https://github.com/org/mobile-app",
			Connected:    true,
			Issues:       7,
		},
		{
			ID:           "r4",
			Name:         "data-pipeline",
			Description:  "Data processing pipeline using Apache Airflow",
			Language:     "Python",
			Stars:        15,
			Forks:        3,
			CreatedAt:    ts("2024-02-10T11:22:33Z"),
			UpdatedAt:    ts("2025-06-04T10:12:56Z"),
			Owner:        "u3",
			Contributors: []string{"u3", "u4"},
			Private:      true,
			Tags:         []string{"python", "airflow", "data", "pipeline"},
			URL:          "https://github.com/org/data-pipeline",
			Connected:    true,
			Issues:       12,
		},
		{
			ID:           "r5",
			Name:         "ui-components",
			Description:  "Shared UI component library",
			Language:     "TypeScript",
			Stars:        25,
			Forks:        7,
			CreatedAt:    ts("2024-02-15T08:45:12Z"),
			UpdatedAt:    ts("2025-06-06T16:22:33Z"),
			Owner:        "u4",
			Contributors: []string{"u1", "u2", "u5"},
			Private:      false,
			Tags:         []string{"ui", "components", "react", "typescript"},
			URL:          "https://github.com/org/ui-components",
			Connected:    true,
			Issues:       3,
		},
		{
			ID:           "r6",
			Name:         "db-service",
			Description:  "Database management service with MongoDB",
			Language:     "JavaScript",
			Stars:        18,
			Forks:        5,
			CreatedAt:    ts("2024-03-05T13:42:15Z"),
			UpdatedAt:    ts("2025-06-02T11:33:42Z"),
			Owner:        "u3",
			Contributors: []string{"u3", "u5"},
			Private:      false,
			Tags:         []string{"mongodb", "database", "javascript"},
			URL:          "https://github.com/org/db-service",
			Connected:    false,
			Issues:       22,
		},
		{
			ID:           "r7",
			Name:         "analytics-service",
			Description:  "User analytics and reporting service",
			Language:     "Go",
			Stars:        12,
			Forks:        2,
			CreatedAt:    ts("2024-04-10T09:22:45Z"),
			UpdatedAt:    ts("2025-05-28T16:44:12Z"),
			Owner:        "u5",
			Contributors: []string{"u3", "u5"},
			Private:      true,
			Tags:         []string{"analytics", "go", "reporting"},
			URL:          "https://github.com/org/analytics-service",
			Connected:    false,
			Issues:       9,
		},
	}
}

func branches() []models.Branch {
	return []models.Branch{
		{ID: "b1", RepoID: "r1", Name: "main", IsDefault: true},
		{ID: "b2", RepoID: "r1", Name: "develop"},
		{ID: "b3", RepoID: "r1", Name: "feature/new-auth"},
		{ID: "b4", RepoID: "r2", Name: "main", IsDefault: true},
		{ID: "b5", RepoID: "r2", Name: "develop"},
		{ID: "b6", RepoID: "r3", Name: "main", IsDefault: true},
		{ID: "b7", RepoID: "r4", Name: "main", IsDefault: true},
		{ID: "b8", RepoID: "r4", Name: "feature/stream-processing"},
		{ID: "b9", RepoID: "r5", Name: "main", IsDefault: true},
		{ID: "b10", RepoID: "r5", Name: "v2-components"},
	}
}

func commits() []models.Commit {
	return []models.Commit{
		{ID: "c1", Hash: "a1b2c3d4e5f6g7h8i9j0", Message: "Fix authentication bug in login flow", AuthorID: "u2", RepoID: "r1", BranchID: "b1", CreatedAt: ts("2025-06-07T14:22:34Z"), FilesChanged: 3, Additions: 24, Deletions: 12, Status: models.CommitStatusSuccess, PipelineID: "p1"},
		{ID: "c2", Hash: "b2c3d4e5f6g7h8i9j0k1", Message: "Update README with new installation instructions", AuthorID: "u1", RepoID: "r1", BranchID: "b1", CreatedAt: ts("2025-06-06T11:45:22Z"), FilesChanged: 1, Additions: 15, Deletions: 7, Status: models.CommitStatusSuccess},
		{ID: "c3", Hash: "c3d4e5f6g7h8i9j0k1l2", Message: "Add new API endpoint for user profiles", AuthorID: "u3", RepoID: "r2", BranchID: "b4", CreatedAt: ts("2025-06-07T09:33:11Z"), FilesChanged: 5, Additions: 87, Deletions: 12, Status: models.CommitStatusSuccess, PipelineID: "p2"},
		{ID: "c4", Hash: "d4e5f6g7h8i9j0k1l2m3", Message: "Fix unit tests for data processing module", AuthorID: "u3", RepoID: "r4", BranchID: "b7", CreatedAt: ts("2025-06-06T16:44:55Z"), FilesChanged: 2, Additions: 34, Deletions: 28, Status: models.CommitStatusFailed, PipelineID: "p4"},
		{ID: "c5", Hash: "e5f6g7h8i9j0k1l2m3n4", Message: "Optimize rendering performance in list views", AuthorID: "u2", RepoID: "r3", BranchID: "b6", CreatedAt: ts("2025-06-05T13:12:44Z"), FilesChanged: 4, Additions: 56, Deletions: 43, Status: models.CommitStatusSuccess, PipelineID: "p3"},
		{ID: "c6", Hash: "f6g7h8i9j0k1l2m3n4o5", Message: "Add new button component with loading state", AuthorID: "u5", RepoID: "r5", BranchID: "b9", CreatedAt: ts("2025-06-06T10:23:55Z"), FilesChanged: 2, Additions: 74, Deletions: 12, Status: models.CommitStatusSuccess, PipelineID: "p5"},
		{ID: "c7", Hash: "g7h8i9j0k1l2m3n4o5p6", Message: "Refactor authentication middleware", AuthorID: "u1", RepoID: "r2", BranchID: "b5", CreatedAt: ts("2025-06-05T09:55:33Z"), FilesChanged: 3, Additions: 45, Deletions: 39, Status: models.CommitStatusSuccess, PipelineID: "p6"},
		{ID: "c8", Hash: "h8i9j0k1l2m3n4o5p6q7", Message: "Update dependencies and fix security vulnerabilities", AuthorID: "u4", RepoID: "r1", BranchID: "b2", CreatedAt: ts("2025-06-05T14:44:22Z"), FilesChanged: 1, Additions: 12, Deletions: 12, Status: models.CommitStatusPending, PipelineID: "p7"},
		{ID: "c9", Hash: "i9j0k1l2m3n4o5p6q7r8", Message: "Add dark mode support to UI components", AuthorID: "u2", RepoID: "r5", BranchID: "b10", CreatedAt: ts("2025-06-04T11:34:12Z"), FilesChanged: 12, Additions: 156, Deletions: 23, Status: models.CommitStatusSuccess, PipelineID: "p8"},
		{ID: "c10", Hash: "j0k1l2m3n4o5p6q7r8s9", Message: "Implement real-time notification system", AuthorID: "u3", RepoID: "r4", BranchID: "b8", CreatedAt: ts("2025-06-03T15:22:45Z"), FilesChanged: 8, Additions: 234, Deletions: 45, Status: models.CommitStatusFailed, PipelineID: "p9"},
	}
}

func stage(id, name, status, started, finished string, duration int) models.PipelineStage {
	s := models.PipelineStage{ID: id, Name: name, Status: status, StartedAt: ts(started), Duration: duration}
	if finished != "" {
		s.FinishedAt = tsp(finished)
	}
	return s
}

func pipelines() []models.Pipeline {
	const (
		ok      = models.PipelineStatusSuccess
		failed  = models.PipelineStatusFailed
		running = models.PipelineStatusRunning
	)
	return []models.Pipeline{
		{
			ID: "p1", Name: "Build and Test Frontend", RepoID: "r1", CommitID: "c1", Status: ok,
			StartedAt: ts("2025-06-07T14:23:00Z"), FinishedAt: tsp("2025-06-07T14:28:45Z"), Duration: 345,
			TriggeredBy: "u2", Environment: models.EnvironmentDevelopment,
			Stages: []models.PipelineStage{
				stage("ps1_1", "Install Dependencies", ok, "2025-06-07T14:23:00Z", "2025-06-07T14:24:30Z", 90),
				stage("ps1_2", "Lint Code", ok, "2025-06-07T14:24:31Z", "2025-06-07T14:25:45Z", 74),
				stage("ps1_3", "Run Tests", ok, "2025-06-07T14:25:46Z", "2025-06-07T14:27:15Z", 89),
				stage("ps1_4", "Build", ok, "2025-06-07T14:27:16Z", "2025-06-07T14:28:45Z", 89),
			},
		},
		{
			ID: "p2", Name: "API Service Pipeline", RepoID: "r2", CommitID: "c3", Status: ok,
			StartedAt: ts("2025-06-07T09:33:45Z"), FinishedAt: tsp("2025-06-07T09:38:22Z"), Duration: 277,
			TriggeredBy: "u3", Environment: models.EnvironmentDevelopment,
			Stages: []models.PipelineStage{
				stage("ps2_1", "Install Dependencies", ok, "2025-06-07T09:33:45Z", "2025-06-07T09:34:30Z", 45),
				stage("ps2_2", "Run Tests", ok, "2025-06-07T09:34:31Z", "2025-06-07T09:36:45Z", 134),
				stage("ps2_3", "Build", ok, "2025-06-07T09:36:46Z", "2025-06-07T09:38:22Z", 96),
			},
		},
		{
			ID: "p3", Name: "Mobile App Pipeline", RepoID: "r3", CommitID: "c5", Status: ok,
			StartedAt: ts("2025-06-05T13:13:00Z"), FinishedAt: tsp("2025-06-05T13:22:35Z"), Duration: 575,
			TriggeredBy: "u2", Environment: models.EnvironmentStaging,
			Stages: []models.PipelineStage{
				stage("ps3_1", "Install Dependencies", ok, "2025-06-05T13:13:00Z", "2025-06-05T13:15:45Z", 165),
				stage("ps3_2", "Run Tests", ok, "2025-06-05T13:15:46Z", "2025-06-05T13:18:22Z", 156),
				stage("ps3_3", "Build iOS", ok, "2025-06-05T13:18:23Z", "2025-06-05T13:20:15Z", 112),
				stage("ps3_4", "Build Android", ok, "2025-06-05T13:20:16Z", "2025-06-05T13:22:35Z", 139),
			},
		},
		{
			ID: "p4", Name: "Data Pipeline Build", RepoID: "r4", CommitID: "c4", Status: failed,
			StartedAt: ts("2025-06-06T16:45:10Z"), FinishedAt: tsp("2025-06-06T16:48:30Z"), Duration: 200,
			TriggeredBy: "u3", Environment: models.EnvironmentDevelopment,
			Stages: []models.PipelineStage{
				stage("ps4_1", "Install Dependencies", ok, "2025-06-06T16:45:10Z", "2025-06-06T16:46:25Z", 75),
				stage("ps4_2", "Run Tests", failed, "2025-06-06T16:46:26Z", "2025-06-06T16:48:30Z", 124),
			},
		},
		{
			ID: "p5", Name: "UI Components Build", RepoID: "r5", CommitID: "c6", Status: ok,
			StartedAt: ts("2025-06-06T10:24:10Z"), FinishedAt: tsp("2025-06-06T10:28:55Z"), Duration: 285,
			TriggeredBy: "u5", Environment: models.EnvironmentDevelopment,
			Stages: []models.PipelineStage{
				stage("ps5_1", "Install Dependencies", ok, "2025-06-06T10:24:10Z", "2025-06-06T10:25:30Z", 80),
				stage("ps5_2", "Lint Code", ok, "2025-06-06T10:25:31Z", "2025-06-06T10:26:45Z", 74),
				stage("ps5_3", "Run Tests", ok, "2025-06-06T10:26:46Z", "2025-06-06T10:28:05Z", 79),
				stage("ps5_4", "Build Storybook", ok, "2025-06-06T10:28:06Z", "2025-06-06T10:28:55Z", 49),
			},
		},
		{
			ID: "p6", Name: "API Service Deployment", RepoID: "r2", CommitID: "c7", Status: ok,
			StartedAt: ts("2025-06-05T09:56:00Z"), FinishedAt: tsp("2025-06-05T10:02:35Z"), Duration: 395,
			TriggeredBy: "u1", Environment: models.EnvironmentProduction,
			Stages: []models.PipelineStage{
				stage("ps6_1", "Install Dependencies", ok, "2025-06-05T09:56:00Z", "2025-06-05T09:57:15Z", 75),
				stage("ps6_2", "Run Tests", ok, "2025-06-05T09:57:16Z", "2025-06-05T09:59:30Z", 134),
				stage("ps6_3", "Build", ok, "2025-06-05T09:59:31Z", "2025-06-05T10:01:15Z", 104),
				stage("ps6_4", "Deploy", ok, "2025-06-05T10:01:16Z", "2025-06-05T10:02:35Z", 79),
			},
		},
		{
			ID: "p7", Name: "Frontend CI", RepoID: "r1", CommitID: "c8", Status: running,
			StartedAt: ts("2025-06-05T14:44:30Z"), Duration: 0,
			TriggeredBy: "u4", Environment: models.EnvironmentDevelopment,
			Stages: []models.PipelineStage{
				stage("ps7_1", "Install Dependencies", ok, "2025-06-05T14:44:30Z", "2025-06-05T14:46:00Z", 90),
				stage("ps7_2", "Run Tests", running, "2025-06-05T14:46:01Z", "", 0),
			},
		},
		{
			ID: "p8", Name: "UI Components Dark Mode", RepoID: "r5", CommitID: "c9", Status: ok,
			StartedAt: ts("2025-06-04T11:34:30Z"), FinishedAt: tsp("2025-06-04T11:41:22Z"), Duration: 412,
			TriggeredBy: "u2", Environment: models.EnvironmentStaging,
			Stages: []models.PipelineStage{
				stage("ps8_1", "Install Dependencies", ok, "2025-06-04T11:34:30Z", "2025-06-04T11:36:00Z", 90),
				stage("ps8_2", "Lint Code", ok, "2025-06-04T11:36:01Z", "2025-06-04T11:37:30Z", 89),
				stage("ps8_3", "Run Tests", ok, "2025-06-04T11:37:31Z", "2025-06-04T11:39:15Z", 104),
				stage("ps8_4", "Build", ok, "2025-06-04T11:39:16Z", "2025-06-04T11:41:22Z", 126),
			},
		},
		{
			ID: "p9", Name: "Data Pipeline Deployment", RepoID: "r4", CommitID: "c10", Status: failed,
			StartedAt: ts("2025-06-03T15:23:10Z"), FinishedAt: tsp("2025-06-03T15:28:45Z"), Duration: 335,
			TriggeredBy: "u3", Environment: models.EnvironmentProduction,
			Stages: []models.PipelineStage{
				stage("ps9_1", "Install Dependencies", ok, "2025-06-03T15:23:10Z", "2025-06-03T15:24:45Z", 95),
				stage("ps9_2", "Run Tests", ok, "2025-06-03T15:24:46Z", "2025-06-03T15:26:30Z", 104),
				stage("ps9_3", "Build", ok, "2025-06-03T15:26:31Z", "2025-06-03T15:28:00Z", 89),
				stage("ps9_4", "Deploy", failed, "2025-06-03T15:28:01Z", "2025-06-03T15:28:45Z", 44),
			},
		},
	}
}

func integrations() []models.Integration {
	return []models.Integration{
		{
			ID: "i1", Name: "GitHub", Type: models.IntegrationTypeCICD, Status: models.IntegrationStatusActive,
			ConnectedAt: ts("2024-01-22T10:15:32Z"), LastSyncAt: ts("2025-06-07T15:30:22Z"),
			ConnectionStrength: 95, Logo: "github",
			ConnectedRepos: []string{"r1", "r2", "r3", "r4", "r5"}, ConnectedBy: "u1",
			Settings: map[string]any{"webhooksEnabled": true, "autoSync": true, "syncInterval": 300},
		},
		{
			ID: "i2", Name: "AWS", Type: models.IntegrationTypeCloud, Status: models.IntegrationStatusActive,
			ConnectedAt: ts("2024-01-25T14:22:45Z"), LastSyncAt: ts("2025-06-07T12:45:18Z"),
			ConnectionStrength: 92, Logo: "aws",
			ConnectedRepos: []string{"r2", "r4"}, ConnectedBy: "u1",
			Settings: map[string]any{"region": "us-west-2", "services": []any{"ec2", "s3", "lambda", "rds"}},
		},
		{
			ID: "i3", Name: "Slack", Type: models.IntegrationTypeCommunication, Status: models.IntegrationStatusActive,
			ConnectedAt: ts("2024-02-10T11:30:15Z"), LastSyncAt: ts("2025-06-07T16:15:33Z"),
			ConnectionStrength: 98, Logo: "slack",
			ConnectedRepos: []string{"r1", "r2", "r3", "r4", "r5"}, ConnectedBy: "u4",
			Settings: map[string]any{"channels": []any{"#deployments", "#alerts", "#general"}, "notifyOnSuccess": true, "notifyOnFailure": true},
		},
		{
			ID: "i4", Name: "Datadog", Type: models.IntegrationTypeMonitoring, Status: models.IntegrationStatusActive,
			ConnectedAt: ts("2024-03-05T09:45:22Z"), LastSyncAt: ts("2025-06-07T14:10:45Z"),
			ConnectionStrength: 87, Logo: "datadog",
			ConnectedRepos: []string{"r1", "r2"}, ConnectedBy: "u4",
			Settings: map[string]any{"metricsEnabled": true, "logsEnabled": true, "apmEnabled": true, "alertingEnabled": true},
		},
		{
			ID: "i5", Name: "Snyk", Type: models.IntegrationTypeSecurity, Status: models.IntegrationStatusError,
			ConnectedAt: ts("2024-04-10T13:22:45Z"), LastSyncAt: ts("2025-06-05T10:15:33Z"),
			ConnectionStrength: 45, Logo: "docker",
			ConnectedRepos: []string{"r1", "r3", "r5"}, ConnectedBy: "u1",
			Settings: map[string]any{"scanOnPush": true, "vulnerabilityThreshold": "medium", "autoFix": false},
		},
		{
			ID: "i6", Name: "Google Analytics", Type: models.IntegrationTypeAnalytics, Status: models.IntegrationStatusInactive,
			ConnectedAt: ts("2024-02-20T15:30:12Z"), LastSyncAt: ts("2025-05-20T11:45:22Z"),
			ConnectionStrength: 0, Logo: "analytics",
			ConnectedRepos: []string{"r1", "r3"}, ConnectedBy: "u2",
			Settings: map[string]any{"trackingId": "UA-12345678-1", "anonymizeIp": true},
		},
		{
			ID: "i7", Name: "Docker Hub", Type: models.IntegrationTypeCICD, Status: models.IntegrationStatusActive,
			ConnectedAt: ts("2024-03-15T10:25:33Z"), LastSyncAt: ts("2025-06-06T13:45:22Z"),
			ConnectionStrength: 89, Logo: "docker-hub",
			ConnectedRepos: []string{"r2", "r4"}, ConnectedBy: "u3",
			Settings: map[string]any{"autoPublish": true, "tagFormat": "{version}"},
		},
	}
}
