// Command seed resets the database and loads a small demo dataset:
// four users, three clients, three processes and three tasks.
package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/spec-kit/legal-case-service/internal/auth"
	"github.com/spec-kit/legal-case-service/internal/config"
	"github.com/spec-kit/legal-case-service/internal/domain"
	"github.com/spec-kit/legal-case-service/internal/persistence"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	if err := seed(ctx, pg.PoolHandle(), cfg.Auth.BcryptCost); err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}

	logger.Info("seed complete",
		zap.String("admin", "admin@plataformagestao.com"),
		zap.String("advogado1", "joao.silva@escritorio.com"),
		zap.String("advogado2", "maria.santos@escritorio.com"),
		zap.String("assistente", "ana.oliveira@escritorio.com"),
	)
}

func seed(ctx context.Context, pool *pgxpool.Pool, bcryptCost int) error {
	// Wipe in dependency order so the FKs do not complain.
	for _, table := range []string{"movements", "deadlines", "audiences", "tasks", "processes", "clients", "users"} {
		if _, err := pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}

	adminHash, err := auth.HashPassword("Admin123!", bcryptCost)
	if err != nil {
		return err
	}
	advogadoHash, err := auth.HashPassword("Advogado123!", bcryptCost)
	if err != nil {
		return err
	}
	assistenteHash, err := auth.HashPassword("Assistente123!", bcryptCost)
	if err != nil {
		return err
	}

	adminID := uuid.NewString()
	advogado1ID := uuid.NewString()
	advogado2ID := uuid.NewString()
	assistenteID := uuid.NewString()

	users := []struct {
		id, name, email, hash string
		role                  domain.UserRole
	}{
		{adminID, "Administrador Sistema", "admin@plataformagestao.com", adminHash, domain.RoleAdmin},
		{advogado1ID, "Dr. João Silva", "joao.silva@escritorio.com", advogadoHash, domain.RoleAdvogado},
		{advogado2ID, "Dra. Maria Santos", "maria.santos@escritorio.com", advogadoHash, domain.RoleAdvogado},
		{assistenteID, "Ana Oliveira", "ana.oliveira@escritorio.com", assistenteHash, domain.RoleAssistente},
	}
	for _, u := range users {
		if _, err := pool.Exec(ctx,
			`INSERT INTO users (id, name, email, password_hash, role) VALUES ($1, $2, $3, $4, $5)`,
			u.id, u.name, u.email, u.hash, u.role,
		); err != nil {
			return err
		}
	}

	cliente1ID := uuid.NewString()
	cliente2ID := uuid.NewString()
	cliente3ID := uuid.NewString()

	clients := []struct {
		id, name, email, phone, document string
		clientType                       domain.ClientType
		address, city, state, zipCode    string
		notes                            *string
	}{
		{cliente1ID, "Empresa ABC Ltda", "contato@empresaabc.com", "(11) 99999-1111", "12.345.678/0001-90",
			domain.ClientTypePessoaJuridica, "Rua das Empresas, 123", "São Paulo", "SP", "01234-567",
			strptr("Cliente corporativo de grande porte")},
		{cliente2ID, "Carlos Pereira", "carlos@email.com", "(11) 88888-2222", "123.456.789-01",
			domain.ClientTypePessoaFisica, "Av. Principal, 456", "São Paulo", "SP", "01234-568",
			strptr("Cliente pessoa física")},
		{cliente3ID, "Indústria XYZ S.A.", "juridico@industriaxyz.com", "(11) 77777-3333", "98.765.432/0001-10",
			domain.ClientTypePessoaJuridica, "Rod. Industrial, km 25", "Guarulhos", "SP", "07000-000", nil},
	}
	for _, c := range clients {
		if _, err := pool.Exec(ctx,
			`INSERT INTO clients (id, name, email, phone, document, type, address, city, state, zip_code, notes)
             VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			c.id, c.name, c.email, c.phone, c.document, c.clientType,
			c.address, c.city, c.state, c.zipCode, c.notes,
		); err != nil {
			return err
		}
	}

	processo1ID := uuid.NewString()
	processo2ID := uuid.NewString()
	processo3ID := uuid.NewString()

	processes := []struct {
		id, number, title, description        string
		processType                           domain.ProcessType
		court, judge, opposingParty           string
		value                                 float64
		startDate                             time.Time
		clientID, responsibleID               string
	}{
		{processo1ID, "1001234-56.2023.8.26.0100", "Ação Trabalhista - Empresa ABC",
			"Reclamação trabalhista movida por ex-funcionário", domain.ProcessTypeTrabalhista,
			"1ª Vara do Trabalho de São Paulo", "Dra. Fernanda Lima", "João dos Santos",
			50000.00, date(2023, 6, 15), cliente1ID, advogado1ID},
		{processo2ID, "2001234-78.2023.8.26.0002", "Ação Cível - Cobrança",
			"Cobrança de serviços prestados", domain.ProcessTypeCivel,
			"2ª Vara Cível de São Paulo", "Dr. Roberto Costa", "Empresa Devedora Ltda",
			25000.00, date(2023, 8, 20), cliente2ID, advogado2ID},
		{processo3ID, "3001234-90.2023.8.26.0003", "Ação Tributária - Indústria XYZ",
			"Questionamento de autuação fiscal", domain.ProcessTypeTributario,
			"1ª Vara da Fazenda Pública", "Dr. Alberto Mendes", "Fazenda do Estado de SP",
			150000.00, date(2023, 9, 10), cliente3ID, advogado1ID},
	}
	for _, p := range processes {
		if _, err := pool.Exec(ctx,
			`INSERT INTO processes (id, number, title, description, type, status, court, judge,
                                    opposing_party, value, start_date, client_id, responsible_id)
             VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			p.id, p.number, p.title, p.description, p.processType, domain.ProcessStatusAtivo,
			p.court, p.judge, p.opposingParty, p.value, p.startDate, p.clientID, p.responsibleID,
		); err != nil {
			return err
		}
	}

	tasks := []struct {
		title, description      string
		priority                domain.TaskPriority
		dueDate                 time.Time
		assignedID, createdByID string
		processID               string
	}{
		{"Elaborar contestação", "Preparar peça de defesa para o processo trabalhista",
			domain.TaskPriorityAlta, date(2024, 1, 15), advogado1ID, adminID, processo1ID},
		{"Reunir documentos", "Coletar documentação necessária para a defesa",
			domain.TaskPriorityMedia, date(2024, 1, 20), assistenteID, advogado1ID, processo1ID},
		{"Acompanhar prazo recursal", "Verificar prazos para eventual recurso",
			domain.TaskPriorityAlta, date(2024, 1, 30), advogado2ID, adminID, processo2ID},
	}
	for _, t := range tasks {
		if _, err := pool.Exec(ctx,
			`INSERT INTO tasks (id, title, description, status, priority, due_date, assigned_id, created_by_id, process_id)
             VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			uuid.NewString(), t.title, t.description, domain.TaskStatusPendente, t.priority,
			t.dueDate, t.assignedID, t.createdByID, t.processID,
		); err != nil {
			return err
		}
	}

	return nil
}

func strptr(s string) *string { return &s }

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
