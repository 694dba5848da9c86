package fixtures

import "github.com/odvcencio/maestro/internal/models"

// Members returns the people directory listed on the users page.
func Members() []models.Member {
	return []models.Member{
		{ID: "user-001", Name: "Pedro Morais", Email: "pedro@empresa.com", Role: "Admin", Department: "Engenharia", LastActive: "10 minutos atrás", Status: models.MemberStatusActive},
		{ID: "user-002", Name: "Ana Silva", Email: "ana.silva@empresa.com", Role: "Desenvolvedor", Department: "Engenharia", LastActive: "1 hora atrás", Status: models.MemberStatusActive},
		{ID: "user-003", Name: "João Ferreira", Email: "joao@empresa.com", Role: "DevOps", Department: "Infraestrutura", LastActive: "3 horas atrás", Status: models.MemberStatusActive},
		{ID: "user-004", Name: "Mariana Costa", Email: "mariana@empresa.com", Role: "Product Manager", Department: "Produto", LastActive: "Ontem", Status: models.MemberStatusAway},
		{ID: "user-005", Name: "Roberto Santos", Email: "roberto@empresa.com", Role: "QA Analyst", Department: "Qualidade", LastActive: "3 dias atrás", Status: models.MemberStatusInactive},
		{ID: "user-006", Name: "Juliana Lima", Email: "juliana@empresa.com", Role: "Desenvolvedor", Department: "Mobile", LastActive: "Agora mesmo", Status: models.MemberStatusActive},
		{ID: "user-007", Name: "Carlos Mendes", Email: "carlos@empresa.com", Role: "Arquiteto", Department: "Engenharia", LastActive: "1 semana atrás", Status: models.MemberStatusInactive},
		{ID: "user-008", Name: "Fernanda Almeida", Email: "fernanda@empresa.com", Role: "Tech Lead", Department: "Engenharia", LastActive: "5 horas atrás", Status: models.MemberStatusActive},
	}
}

// Workflows returns the workflow catalog shown on the pipelines page.
func Workflows() []models.Workflow {
	return []models.Workflow{
		{
			ID: "data-ingestion-lambda-01", Name: "Data Ingestion Pipeline", Status: models.WorkflowStatusSuccess,
			LastRunTime: "1 hora atrás", LastRunBy: "Pedro Morais", Type: "ETL",
			Description:    "Pipeline responsável pela ingestão de dados brutos de fontes externas para processamento posterior.",
			AverageRuntime: "5m 23s", SuccessRate: 98, QA: models.QAStatus{Passed: 24, Failed: 1, Skipped: 3},
		},
		{
			ID: "ml-training-lambda-02", Name: "Machine Learning Training Pipeline", Status: models.WorkflowStatusRunning,
			LastRunTime: "27 minutos atrás", LastRunBy: "Ana Silva", Type: "Machine Learning",
			Description:    "Pipeline de treinamento de modelos de machine learning para previsão de tendências.",
			AverageRuntime: "27m 12s", SuccessRate: 92, QA: models.QAStatus{Passed: 18, Failed: 2, Skipped: 4},
		},
		{
			ID: "data-validation-lambda-03", Name: "Data Validation Pipeline", Status: models.WorkflowStatusFailed,
			LastRunTime: "2 horas atrás", LastRunBy: "Carlos Eduardo", Type: "Validação",
			Description:    "Pipeline para validação da integridade e qualidade dos dados processados.",
			AverageRuntime: "3m 45s", SuccessRate: 85, QA: models.QAStatus{Passed: 15, Failed: 7, Skipped: 2},
		},
		{
			ID: "api-integration-lambda-04", Name: "API Integration Pipeline", Status: models.WorkflowStatusSuccess,
			LastRunTime: "30 minutos atrás", LastRunBy: "Julia Costa", Type: "Integração",
			Description:    "Pipeline de integração com APIs externas para obtenção de dados em tempo real.",
			AverageRuntime: "2m 10s", SuccessRate: 99, QA: models.QAStatus{Passed: 32, Failed: 0, Skipped: 1},
		},
		{
			ID: "report-generation-lambda-05", Name: "Report Generation Pipeline", Status: models.WorkflowStatusWarning,
			LastRunTime: "5 horas atrás", LastRunBy: "Marcos Souza", Type: "Relatório",
			Description:    "Pipeline responsável pela geração automatizada de relatórios comerciais e dashboards.",
			AverageRuntime: "8m 37s", SuccessRate: 90, QA: models.QAStatus{Passed: 28, Failed: 3, Skipped: 5},
		},
		{
			ID: "data-transformation-lambda-06", Name: "Data Transformation Pipeline", Status: models.WorkflowStatusSuccess,
			LastRunTime: "12 horas atrás", LastRunBy: "Felipe Martins", Type: "ETL",
			Description:    "Pipeline para transformação e enriquecimento de dados antes da carga em datawarehouse.",
			AverageRuntime: "15m 22s", SuccessRate: 95, QA: models.QAStatus{Passed: 42, Failed: 2, Skipped: 0},
		},
	}
}

// Connectors returns the services offered on the integrations page.
func Connectors() []models.Connector {
	return []models.Connector{
		{ID: "aws", Name: "Amazon Web Services", Description: "Conecte sua conta AWS para gerenciar recursos e pipelines de infraestrutura.", Connected: false, Color: "#FF9900"},
		{ID: "jira", Name: "Jira", Description: "Integre com Jira para gerenciar tarefas, sprints e acompanhar progresso.", Connected: true, Color: "#0052CC"},
		{ID: "trello", Name: "Trello", Description: "Conecte quadros Trello para visualizar e gerenciar tarefas de projeto.", Connected: false, Color: "#0079BF"},
		{ID: "linear", Name: "Linear", Description: "Integre com Linear para gerenciamento de projetos e acompanhamento de bugs.", Connected: false, Color: "#5E6AD2"},
	}
}
