package user

import (
	"context"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/feliperamosdev/portfolio-api/internal/audit"
	"github.com/feliperamosdev/portfolio-api/internal/httperr"
	"github.com/feliperamosdev/portfolio-api/internal/models"
	"github.com/feliperamosdev/portfolio-api/internal/validators"
)

// Papéis válidos de operador.
const (
	RoleRoot           = "root"
	RoleAdmin          = "admin"
	RoleProposalEditor = "proposal-editor"
)

func IsValidRole(role string) bool {
	switch role {
	case RoleRoot, RoleAdmin, RoleProposalEditor:
		return true
	}
	return false
}

// Repository separa a criação da identidade da concessão do papel — o
// provisionamento precisa desfazer a primeira quando a segunda falha.
type Repository interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, u *models.User) error
	DeleteUser(ctx context.Context, id uint) error
	AssignRole(ctx context.Context, userID uint, role string) error
}

// ======================================================
// INPUT
// ======================================================

type ProvisionInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// ======================================================
// USE CASE
// ======================================================

type ProvisionUser struct {
	repo  Repository
	audit *audit.Dispatcher
}

func NewProvisionUser(repo Repository, audit *audit.Dispatcher) *ProvisionUser {
	return &ProvisionUser{
		repo:  repo,
		audit: audit,
	}
}

// Execute cria a identidade e concede exatamente um papel. Se a concessão
// falhar depois da identidade criada, a identidade é apagada — conta órfã
// nunca sobrevive ao provisionamento.
func (uc *ProvisionUser) Execute(
	ctx context.Context,
	operatorID uint,
	in ProvisionInput,
) (*models.User, error) {

	if strings.TrimSpace(in.Name) == "" {
		return nil, httperr.ErrBusiness("name_required")
	}
	if len(in.Password) < 6 {
		return nil, httperr.ErrBusiness("password_too_short")
	}
	if !IsValidRole(in.Role) {
		return nil, httperr.ErrBusiness("invalid_role")
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !validators.IsEmailDomainValid(email) {
		return nil, httperr.ErrBusiness("invalid_email_domain")
	}

	exists, err := uc.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrBusiness("email_already_exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: string(hashed),
	}

	if err := uc.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	if err := uc.repo.AssignRole(ctx, u.ID, in.Role); err != nil {
		// Rollback compensatório
		if delErr := uc.repo.DeleteUser(ctx, u.ID); delErr != nil {
			log.Printf("[user] rollback failed for user %d: %v", u.ID, delErr)
		}
		return nil, httperr.ErrBusiness("role_assignment_failed")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &operatorID,
		Action:   "user_provisioned",
		Entity:   "user",
		EntityID: &u.ID,
		Metadata: map[string]any{"role": in.Role},
	})

	return u, nil
}
