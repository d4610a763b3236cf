package wallet

import (
	"context"
	"fmt"

	"Savora-Backend/domain"
	"Savora-Backend/entities"

	"github.com/google/uuid"
)

type (
	WalletService interface {
		GetBalance(ctx context.Context, userID string) (domain.WalletBalanceResponse, error)
		TopUp(ctx context.Context, req domain.TopUpRequest, userID string) (domain.WalletBalanceResponse, error)
		GetTransactionHistory(ctx context.Context, userID string, page, limit int) ([]*domain.WalletTransactionResponse, int64, error)
	}

	walletService struct {
		walletRepository WalletRepository
	}
)

func NewWalletService(walletRepository WalletRepository) WalletService {
	return &walletService{walletRepository: walletRepository}
}

func (s *walletService) GetBalance(ctx context.Context, userID string) (domain.WalletBalanceResponse, error) {
	balance, err := s.walletRepository.GetBalance(ctx, userID)
	if err != nil {
		return domain.WalletBalanceResponse{}, err
	}
	return domain.WalletBalanceResponse{Balance: balance}, nil
}

func (s *walletService) TopUp(ctx context.Context, req domain.TopUpRequest, userID string) (domain.WalletBalanceResponse, error) {
	if req.Amount <= 0 {
		return domain.WalletBalanceResponse{}, domain.ErrInvalidTopUpAmount
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.WalletBalanceResponse{}, domain.ErrParseUUID
	}

	currentBalance, err := s.walletRepository.GetBalance(ctx, userID)
	if err != nil {
		return domain.WalletBalanceResponse{}, err
	}

	newBalance := currentBalance + req.Amount
	transaction := &entities.WalletTransaction{
		ID:          uuid.New(),
		UserID:      userUUID,
		Amount:      req.Amount,
		Type:        domain.WalletTransactionTopUp,
		Description: fmt.Sprintf("Topped up %.2f", req.Amount),
		Balance:     newBalance,
	}

	if err := s.walletRepository.CreateTransaction(ctx, transaction); err != nil {
		return domain.WalletBalanceResponse{}, err
	}

	return domain.WalletBalanceResponse{Balance: newBalance}, nil
}

func (s *walletService) GetTransactionHistory(ctx context.Context, userID string, page, limit int) ([]*domain.WalletTransactionResponse, int64, error) {
	transactions, count, err := s.walletRepository.GetTransactions(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.WalletTransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		resp := &domain.WalletTransactionResponse{
			ID:          tx.ID.String(),
			Amount:      tx.Amount,
			Type:        tx.Type,
			Description: tx.Description,
			Balance:     tx.Balance,
			CreatedAt:   tx.CreatedAt,
		}
		if tx.OrderID != nil {
			resp.OrderID = tx.OrderID.String()
		}
		result = append(result, resp)
	}

	return result, count, nil
}
