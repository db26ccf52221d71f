// file: repository/farmer_repository.go

package repository

import (
	"context"
	"database/sql"
	"errors"
	"harvesthub/logger"
	"harvesthub/model"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// ErrDuplicateFarmer is returned when an insert violates the unique email or mobile constraint.
var ErrDuplicateFarmer = errors.New("farmer already exists")

const uniqueViolation = pq.ErrorCode("23505")

// IFarmerRepository defines the contract for farmer database operations.
type IFarmerRepository interface {
	CreateFarmer(ctx context.Context, farmer *model.Farmer) error
	GetFarmerByID(ctx context.Context, id int) (*model.Farmer, error)
	GetFarmerByEmail(ctx context.Context, email string) (*model.Farmer, error)
	MobileExists(ctx context.Context, mobile string) (bool, error)
	UpdateProfilePhoto(ctx context.Context, id int, photo string) error
}

// FarmerRepository implements IFarmerRepository on PostgreSQL.
type FarmerRepository struct {
	DB *sql.DB
}

func NewFarmerRepository(db *sql.DB) *FarmerRepository {
	return &FarmerRepository{DB: db}
}

const farmerColumns = `id, full_name, farm_name, email, mobile, password_hash, farm_location, farmer_type, role, profile_photo, created_at`

func scanFarmer(row interface{ Scan(...any) error }) (*model.Farmer, error) {
	f := &model.Farmer{}
	err := row.Scan(&f.ID, &f.FullName, &f.FarmName, &f.Email, &f.Mobile, &f.PasswordHash,
		&f.FarmLocation, &f.FarmerType, &f.Role, &f.ProfilePhoto, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// CreateFarmer inserts a new farmer and fills in its generated id and creation time.
func (r *FarmerRepository) CreateFarmer(ctx context.Context, farmer *model.Farmer) error {
	log := logger.Log.WithFields(logrus.Fields{
		"email":       farmer.Email,
		"farmer_type": farmer.FarmerType,
	})
	log.Info("Executing query to create a new farmer")

	query := `INSERT INTO farmers (full_name, farm_name, email, mobile, password_hash, farm_location, farmer_type, role, profile_photo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, created_at`
	err := r.DB.QueryRowContext(ctx, query,
		farmer.FullName, farmer.FarmName, farmer.Email, farmer.Mobile, farmer.PasswordHash,
		farmer.FarmLocation, farmer.FarmerType, farmer.Role, farmer.ProfilePhoto,
	).Scan(&farmer.ID, &farmer.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			log.WithField("constraint", pqErr.Constraint).Warn("Farmer violates a unique constraint")
			return ErrDuplicateFarmer
		}
		log.WithError(err).Error("Failed to execute create farmer query")
		return err
	}
	return nil
}

// GetFarmerByID returns sql.ErrNoRows when no farmer has the id.
func (r *FarmerRepository) GetFarmerByID(ctx context.Context, id int) (*model.Farmer, error) {
	log := logger.Log.WithField("farmer_id", id)
	log.Info("Executing query to get farmer by ID")

	farmer, err := scanFarmer(r.DB.QueryRowContext(ctx, `SELECT `+farmerColumns+` FROM farmers WHERE id = $1`, id))
	if err != nil {
		if err != sql.ErrNoRows {
			log.WithError(err).Error("Failed to execute get farmer by ID query")
		}
		return nil, err
	}
	return farmer, nil
}

// GetFarmerByEmail returns sql.ErrNoRows when no farmer has the email.
func (r *FarmerRepository) GetFarmerByEmail(ctx context.Context, email string) (*model.Farmer, error) {
	log := logger.Log.WithField("email", email)
	log.Info("Executing query to get farmer by email")

	farmer, err := scanFarmer(r.DB.QueryRowContext(ctx, `SELECT `+farmerColumns+` FROM farmers WHERE email = $1`, email))
	if err != nil {
		if err != sql.ErrNoRows {
			log.WithError(err).Error("Failed to execute get farmer by email query")
		}
		return nil, err
	}
	return farmer, nil
}

func (r *FarmerRepository) MobileExists(ctx context.Context, mobile string) (bool, error) {
	log := logger.Log.WithField("mobile", logger.MaskMobile(mobile))
	log.Info("Executing query to check mobile number")

	var exists bool
	err := r.DB.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM farmers WHERE mobile = $1)`, mobile).Scan(&exists)
	if err != nil {
		log.WithError(err).Error("Failed to execute mobile exists query")
		return false, err
	}
	return exists, nil
}

// UpdateProfilePhoto replaces the stored photo data URI. It returns sql.ErrNoRows when the farmer does not exist.
func (r *FarmerRepository) UpdateProfilePhoto(ctx context.Context, id int, photo string) error {
	log := logger.Log.WithField("farmer_id", id)
	log.Info("Executing query to update profile photo")

	res, err := r.DB.ExecContext(ctx, `UPDATE farmers SET profile_photo = $1 WHERE id = $2`, photo, id)
	if err != nil {
		log.WithError(err).Error("Failed to execute update profile photo query")
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
