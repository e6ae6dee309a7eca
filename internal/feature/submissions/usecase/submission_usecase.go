package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"chime_backend/internal/feature/submissions/domain/entity"
	"chime_backend/internal/shared/monthwindow"
)

// drawLimit は1回の抽選で返す応募の最大件数です。
const drawLimit = 10

// SubmissionRepository は応募データの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type SubmissionRepository interface {
	// Create は新しい応募をストレージに永続化します。
	Create(ctx context.Context, s *entity.Submission) error

	// FindBySymbolNameSince は symbol と name が一致し、作成日時が since 以降の
	// 応募を1件返します。見つからない場合は (nil, nil) を返します。
	FindBySymbolNameSince(ctx context.Context, symbol, name string, since time.Time) (*entity.Submission, error)

	// FindBetween は作成日時が [from, to] の範囲（両端を含む）にある応募をすべて返します。
	FindBetween(ctx context.Context, from, to time.Time) ([]entity.Submission, error)
}

// DrawEntry は抽選結果の1件です。IDとタイムスタンプは落とします。
type DrawEntry struct {
	Name        string
	Symbol      string
	Description string
}

// SubmissionUsecase は月次応募と抽選のビジネスロジックを実装します。
type SubmissionUsecase struct {
	subs SubmissionRepository
}

// NewSubmissionUsecase はSubmissionUsecaseの新しいインスタンスを生成します。
func NewSubmissionUsecase(subs SubmissionRepository) *SubmissionUsecase {
	return &SubmissionUsecase{subs: subs}
}

// Submit はシンボルを大文字に正規化し、同一 (symbol, name) の応募が
// 今月まだ存在しない場合に限り新しい応募を永続化します。
//
// 重複チェックは月初（下限）のみを比較します。抽選クエリの両端比較とは
// 意図的に異なる、現行の重複排除ポリシーです。
func (u *SubmissionUsecase) Submit(ctx context.Context, today time.Time, name, symbol, description string) (*entity.Submission, error) {
	symbol = strings.ToUpper(symbol)
	first, _ := monthwindow.Bounds(today)

	past, err := u.subs.FindBySymbolNameSince(ctx, symbol, name, first)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if past != nil {
		return nil, ErrDuplicateSubmission
	}

	s := &entity.Submission{Name: name, Symbol: symbol, Description: description}
	if err := u.subs.Create(ctx, s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return s, nil
}

// Draw は今月の応募全件を取得し、一様ランダムに並べ替えて最大10件を返します。
// 応募が0件の場合は空スライスを返します（エラーではありません）。
// 読み取り専用の操作であり、応募も抽選履歴も一切変更しません。
func (u *SubmissionUsecase) Draw(ctx context.Context, today time.Time) ([]DrawEntry, error) {
	first, last := monthwindow.Bounds(today)

	subs, err := u.subs.FindBetween(ctx, first, last)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	entries := make([]DrawEntry, 0, len(subs))
	for _, s := range subs {
		entries = append(entries, DrawEntry{
			Name:        s.Name,
			Symbol:      s.Symbol,
			Description: s.Description,
		})
	}

	rand.Shuffle(len(entries), func(i, j int) {
		entries[i], entries[j] = entries[j], entries[i]
	})

	if len(entries) > drawLimit {
		entries = entries[:drawLimit]
	}
	return entries, nil
}
