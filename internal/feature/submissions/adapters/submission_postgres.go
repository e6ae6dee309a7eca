// Package adapters はsubmissionsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"chime_backend/internal/feature/submissions/domain/entity"
	"chime_backend/internal/feature/submissions/usecase"
)

// pgUniqueViolation はPostgreSQLの一意制約違反のSQLSTATEコードです。
const pgUniqueViolation = "23505"

// submissionPostgres はSubmissionRepositoryインターフェースのPostgreSQL実装です。
// GORMを使用してデータベース操作を行います。
type submissionPostgres struct {
	db *gorm.DB
}

// submissionPostgresがSubmissionRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.SubmissionRepository = (*submissionPostgres)(nil)

// NewSubmissionRepository は指定されたgorm.DB接続でsubmissionPostgresの新しいインスタンスを生成します。
func NewSubmissionRepository(db *gorm.DB) *submissionPostgres {
	return &submissionPostgres{db: db}
}

// SubmissionModel は submissions テーブルの行を表します。
// (symbol, name) に一意制約は張りません。月内の重複排除はusecase側の
// チェックで行われ、同時実行時の競合は現状の設計として許容されています。
type SubmissionModel struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"size:255;not null"`
	Symbol      string    `gorm:"size:32;not null"`
	Description string    `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime"`
}

func (SubmissionModel) TableName() string {
	return "submissions"
}

func toEntity(m SubmissionModel) entity.Submission {
	return entity.Submission{
		ID:          m.ID,
		Name:        m.Name,
		Symbol:      m.Symbol,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// Create は応募をデータベースに追加し、採番されたIDとタイムスタンプをエンティティに書き戻します。
func (r *submissionPostgres) Create(ctx context.Context, s *entity.Submission) error {
	m := SubmissionModel{
		Name:        s.Name,
		Symbol:      s.Symbol,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		// SQLSTATE 23505: 一意制約違反
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return usecase.ErrDuplicateSubmission
		}
		return err
	}
	s.ID = m.ID
	s.CreatedAt = m.CreatedAt
	s.UpdatedAt = m.UpdatedAt
	return nil
}

// FindBySymbolNameSince は symbol と name が一致し created_at >= since の応募を1件返します。
// 該当がない場合は (nil, nil) を返します。
func (r *submissionPostgres) FindBySymbolNameSince(ctx context.Context, symbol, name string, since time.Time) (*entity.Submission, error) {
	var m SubmissionModel
	err := r.db.WithContext(ctx).
		Where("symbol = ? AND name = ? AND created_at >= ?", symbol, name, since).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	e := toEntity(m)
	return &e, nil
}

// FindBetween は created_at が [from, to] の範囲（両端を含む）にある応募をすべて返します。
func (r *submissionPostgres) FindBetween(ctx context.Context, from, to time.Time) ([]entity.Submission, error) {
	var rows []SubmissionModel
	if err := r.db.WithContext(ctx).
		Where("created_at BETWEEN ? AND ?", from, to).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Submission, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}
