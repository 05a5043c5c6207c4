// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/workload-service/internal/db"
	"github.com/canonical/workload-service/internal/logging"
	"github.com/canonical/workload-service/internal/monitoring"
	"github.com/canonical/workload-service/internal/tracing"
	"github.com/canonical/workload-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

var (
	userColumns      = []string{"id", "name", "email", "credential_hash", "org_id", "email_verified", "role"}
	orgMemberColumns = []string{"id", "org_id", "user_id", "role", "created_at", "updated_at"}
	taskColumns      = []string{"id", "name", "org_member_id", "start_date", "end_date", "description"}
	otpColumns       = []string{"id", "user_id", "code_hash", "created_at", "expires_at", "consumed_at"}
)

type rowScanner interface {
	Scan(dest ...any) error
}

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func newID(kind string) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate %s ID: %w", kind, err)
	}
	return id.String(), nil
}

func notFoundOr(err error, op string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

// CreateOrganization inserts an organization stamped with the database clock.
func (s *Storage) CreateOrganization(ctx context.Context, o *types.Organization) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateOrganization")
	defer span.End()

	id, err := newID("organization")
	if err != nil {
		return nil, err
	}

	var org types.Organization
	err = s.db.Statement(ctx).
		Insert("organizations").
		Columns("id", "name", "created_at", "updated_at").
		Values(id, o.Name, sq.Expr("now()"), sq.Expr("now()")).
		Suffix("RETURNING id, name, created_at, updated_at").
		QueryRowContext(ctx).
		Scan(&org.ID, &org.Name, &org.CreatedAt, &org.UpdatedAt)

	if err != nil {
		return nil, wrapConstraintError(err, "insert organization")
	}

	return &org, nil
}

func (s *Storage) GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOrganizationByID")
	defer span.End()

	var org types.Organization
	err := s.db.Statement(ctx).
		Select("id", "name", "created_at", "updated_at").
		From("organizations").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&org.ID, &org.Name, &org.CreatedAt, &org.UpdatedAt)

	if err != nil {
		return nil, notFoundOr(err, "get organization")
	}

	return &org, nil
}

func scanUser(row rowScanner) (*types.User, error) {
	var u types.User
	var credential sql.NullString
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &credential, &u.OrgID, &u.EmailVerified, &u.Role); err != nil {
		return nil, err
	}
	if credential.Valid {
		u.CredentialHash = &credential.String
	}
	return &u, nil
}

// CreateUser inserts a user. The users_email_key unique index turns a racing
// signup for the same email into ErrDuplicateKey.
func (s *Storage) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	id, err := newID("user")
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("users").
		Columns(userColumns...).
		Values(id, u.Name, u.Email, u.CredentialHash, u.OrgID, u.EmailVerified, string(u.Role)).
		Suffix("RETURNING id, name, email, credential_hash, org_id, email_verified, role").
		QueryRowContext(ctx)

	created, err := scanUser(row)
	if err != nil {
		return nil, wrapConstraintError(err, "insert user")
	}

	return created, nil
}

func (s *Storage) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	u, err := scanUser(row)
	if err != nil {
		return nil, notFoundOr(err, "get user")
	}

	return u, nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByEmail")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"email": email}).
		QueryRowContext(ctx)

	u, err := scanUser(row)
	if err != nil {
		return nil, notFoundOr(err, "get user by email")
	}

	return u, nil
}

// SetUserCredential stores the credential hash and marks the email as verified.
func (s *Storage) SetUserCredential(ctx context.Context, id, credentialHash string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetUserCredential")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("credential_hash", credentialHash).
		Set("email_verified", true).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update user credential: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// LockUser holds a row lock on the user until the surrounding transaction ends.
func (s *Storage) LockUser(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.LockUser")
	defer span.End()

	var locked string
	err := s.db.Statement(ctx).
		Select("id").
		From("users").
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		QueryRowContext(ctx).
		Scan(&locked)

	if err != nil {
		return notFoundOr(err, "lock user")
	}

	return nil
}

func (s *Storage) ListUsers(ctx context.Context, orgID string, page, size int64) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListUsers")
	defer span.End()

	pageSize := db.PageSize(size)
	query := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		OrderBy("id").
		Limit(pageSize).
		Offset(db.Offset(page, pageSize))

	if orgID != "" {
		query = query.Where(sq.Eq{"org_id": orgID})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]*types.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return users, nil
}

func scanOrgMember(row rowScanner) (*types.OrgMember, error) {
	var m types.OrgMember
	if err := row.Scan(&m.ID, &m.OrgID, &m.UserID, &m.Role, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

// CreateOrgMember inserts a membership stamped with the database clock.
func (s *Storage) CreateOrgMember(ctx context.Context, member *types.OrgMember) (*types.OrgMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateOrgMember")
	defer span.End()

	id, err := newID("org member")
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("org_members").
		Columns(orgMemberColumns...).
		Values(id, member.OrgID, member.UserID, string(member.Role), sq.Expr("now()"), sq.Expr("now()")).
		Suffix("RETURNING id, org_id, user_id, role, created_at, updated_at").
		QueryRowContext(ctx)

	created, err := scanOrgMember(row)
	if err != nil {
		return nil, wrapConstraintError(err, "insert org member")
	}

	return created, nil
}

func (s *Storage) GetOrgMemberByUserID(ctx context.Context, userID string) (*types.OrgMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOrgMemberByUserID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(orgMemberColumns...).
		From("org_members").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at").
		Limit(1).
		QueryRowContext(ctx)

	m, err := scanOrgMember(row)
	if err != nil {
		return nil, notFoundOr(err, "get org member")
	}

	return m, nil
}

func (s *Storage) ListOrgMembersByOrgID(ctx context.Context, orgID string, page, size int64) ([]*types.OrgMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListOrgMembersByOrgID")
	defer span.End()

	pageSize := db.PageSize(size)
	rows, err := s.db.Statement(ctx).
		Select(orgMemberColumns...).
		From("org_members").
		Where(sq.Eq{"org_id": orgID}).
		OrderBy("created_at", "id").
		Limit(pageSize).
		Offset(db.Offset(page, pageSize)).
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list org members: %w", err)
	}
	defer rows.Close()

	members := make([]*types.OrgMember, 0)
	for rows.Next() {
		m, err := scanOrgMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan org member: %w", err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

func scanTask(row rowScanner) (*types.Task, error) {
	var t types.Task
	if err := row.Scan(&t.ID, &t.Name, &t.OrgMemberID, &t.StartDate, &t.EndDate, &t.Description); err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTask relies on the tasks foreign key to reject unknown org members.
func (s *Storage) CreateTask(ctx context.Context, t *types.Task) (*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTask")
	defer span.End()

	id, err := newID("task")
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("tasks").
		Columns(taskColumns...).
		Values(id, t.Name, t.OrgMemberID, t.StartDate, t.EndDate, t.Description).
		Suffix("RETURNING id, name, org_member_id, start_date, end_date, description").
		QueryRowContext(ctx)

	created, err := scanTask(row)
	if err != nil {
		return nil, wrapConstraintError(err, "insert task")
	}

	return created, nil
}

func (s *Storage) ListTasks(ctx context.Context, orgID string, page, size int64) ([]*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTasks")
	defer span.End()

	pageSize := db.PageSize(size)
	query := s.db.Statement(ctx).
		Select("t.id", "t.name", "t.org_member_id", "t.start_date", "t.end_date", "t.description").
		From("tasks t").
		OrderBy("t.start_date", "t.id").
		Limit(pageSize).
		Offset(db.Offset(page, pageSize))

	if orgID != "" {
		query = query.
			Join("org_members m ON t.org_member_id = m.id").
			Where(sq.Eq{"m.org_id": orgID})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]*types.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return tasks, nil
}

func scanOtp(row rowScanner) (*types.Otp, error) {
	var o types.Otp
	var consumed sql.NullTime
	if err := row.Scan(&o.ID, &o.UserID, &o.CodeHash, &o.CreatedAt, &o.ExpiresAt, &consumed); err != nil {
		return nil, err
	}
	if consumed.Valid {
		o.ConsumedAt = &consumed.Time
	}
	return &o, nil
}

func (s *Storage) CreateOtp(ctx context.Context, o *types.Otp) (*types.Otp, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateOtp")
	defer span.End()

	id, err := newID("otp")
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("otps").
		Columns(otpColumns...).
		Values(id, o.UserID, o.CodeHash, o.CreatedAt, o.ExpiresAt, nil).
		Suffix("RETURNING id, user_id, code_hash, created_at, expires_at, consumed_at").
		QueryRowContext(ctx)

	created, err := scanOtp(row)
	if err != nil {
		return nil, wrapConstraintError(err, "insert otp")
	}

	return created, nil
}

// GetOutstandingOtp returns the newest unconsumed code of a user matching the
// hash, expired codes included: expiry is judged by the caller.
func (s *Storage) GetOutstandingOtp(ctx context.Context, userID, codeHash string) (*types.Otp, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOutstandingOtp")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(otpColumns...).
		From("otps").
		Where(sq.Eq{"user_id": userID, "code_hash": codeHash, "consumed_at": nil}).
		OrderBy("created_at DESC").
		Limit(1).
		QueryRowContext(ctx)

	o, err := scanOtp(row)
	if err != nil {
		return nil, notFoundOr(err, "get otp")
	}

	return o, nil
}

// InvalidateOtps retires every outstanding code of a user.
func (s *Storage) InvalidateOtps(ctx context.Context, userID string, at time.Time) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.InvalidateOtps")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("otps").
		Set("consumed_at", at).
		Where(sq.Eq{"user_id": userID, "consumed_at": nil}).
		ExecContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to invalidate otps: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows, nil
}

// ConsumeOtp marks a code as used. Only an outstanding code can be consumed,
// a concurrent consumer of the same code gets ErrNotFound.
func (s *Storage) ConsumeOtp(ctx context.Context, id string, at time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.ConsumeOtp")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("otps").
		Set("consumed_at", at).
		Where(sq.Eq{"id": id, "consumed_at": nil}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to consume otp: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
