package domain

import "time"

// ProcessType enumerates areas of law a case can belong to.
type ProcessType string

const (
	ProcessTypeCivel          ProcessType = "CIVEL"
	ProcessTypeTrabalhista    ProcessType = "TRABALHISTA"
	ProcessTypeCriminal       ProcessType = "CRIMINAL"
	ProcessTypeTributario     ProcessType = "TRIBUTARIO"
	ProcessTypePrevidenciario ProcessType = "PREVIDENCIARIO"
	ProcessTypeFamilia        ProcessType = "FAMILIA"
)

// ProcessStatus enumerates case lifecycle states.
type ProcessStatus string

const (
	ProcessStatusAtivo     ProcessStatus = "ATIVO"
	ProcessStatusSuspenso  ProcessStatus = "SUSPENSO"
	ProcessStatusArquivado ProcessStatus = "ARQUIVADO"
	ProcessStatusEncerrado ProcessStatus = "ENCERRADO"
)

// Process is a legal case tied to a client and a responsible lawyer.
// Number follows the CNJ unified numbering and is unique.
type Process struct {
	ID            string
	Number        string
	Title         string
	Description   *string
	Type          ProcessType
	Status        ProcessStatus
	Court         *string
	Judge         *string
	OpposingParty *string
	Value         *float64
	StartDate     *time.Time
	EndDate       *time.Time
	ClientID      string
	ResponsibleID string
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	ClientName      *string
	ClientDocument  *string
	ResponsibleName *string
	TaskCount       int
	AudienceCount   int
	DeadlineCount   int
}
