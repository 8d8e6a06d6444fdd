package expense

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/expense-report/backend/internal/application/adapter"
	domainerror "github.com/expense-report/backend/internal/domain/error"
)

// GetReceiptOutput carries the receipt bytes with the sniffed content type.
// FileName carries the sniffed extension, so a stale stored extension is
// corrected before the download leaves the server.
type GetReceiptOutput struct {
	Content     []byte
	ContentType string
	FileName    string
}

// GetReceiptUseCase serves a stored receipt image. The content type comes
// from sniffing the stored bytes, never from the stored filename.
type GetReceiptUseCase struct {
	expenseRepo adapter.ExpenseRepository
	sniffer     adapter.ContentSniffer
}

// NewGetReceiptUseCase creates a new GetReceiptUseCase instance.
func NewGetReceiptUseCase(expenseRepo adapter.ExpenseRepository, sniffer adapter.ContentSniffer) *GetReceiptUseCase {
	return &GetReceiptUseCase{
		expenseRepo: expenseRepo,
		sniffer:     sniffer,
	}
}

// Execute fetches the receipt and resolves its actual content type.
func (uc *GetReceiptUseCase) Execute(ctx context.Context, id uuid.UUID) (*GetReceiptOutput, error) {
	receipt, err := uc.expenseRepo.FindReceiptByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrReceiptNotFound) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeReceiptNotFound,
				"receipt not found",
				domainerror.ErrReceiptNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find receipt: %w", err)
	}

	sniffed := uc.sniffer.Sniff(receipt.Content)

	return &GetReceiptOutput{
		Content:     receipt.Content,
		ContentType: sniffed.MIME,
		FileName:    correctedFileName(receipt.FileName, sniffed.Extension),
	}, nil
}

// correctedFileName replaces the stored extension with the sniffed one, or
// appends it when the stored name has none.
func correctedFileName(name, ext string) string {
	if dot := strings.LastIndex(name, "."); dot >= 0 {
		return name[:dot+1] + ext
	}
	return name + "." + ext
}
