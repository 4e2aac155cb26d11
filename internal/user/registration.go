package user

import (
	"context"
	"fmt"

	"github.com/gridloom/gridloom/internal/domain"
	"github.com/gridloom/gridloom/internal/event"
	"github.com/gridloom/gridloom/internal/logger"
)

// Register creates a new account with the starting coin grant and a default
// profile. A second registration for the same uid is a no-op that returns
// the stored account; the grant is never applied twice.
func (s *service) Register(ctx context.Context, uid, email string) (*domain.Account, bool, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRegisterCalled, "uid", uid)

	account := domain.Account{
		UID:       uid,
		Email:     email,
		Coins:     domain.StartingCoins,
		Profile:   domain.DefaultProfile(email),
		CreatedAt: s.now(),
	}

	created, err := s.repo.CreateAccount(ctx, account)
	if err != nil {
		return nil, false, fmt.Errorf(ErrMsgCreateAccountFailed, err)
	}
	if !created {
		existing, err := s.repo.GetAccount(ctx, uid)
		if err != nil {
			return nil, false, fmt.Errorf(ErrMsgGetAccountFailed, err)
		}
		if existing == nil {
			return nil, false, fmt.Errorf(ErrMsgAccountMissingFmt, uid, domain.ErrAccountNotFound)
		}
		log.Info(LogMsgAccountExists, "uid", uid)
		return existing, false, nil
	}

	s.cache.Set(uid, &account)

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, event.NewUserRegisteredEvent(uid, account.Coins))
	}

	log.Info(LogMsgAccountCreated, "uid", uid, "coins", account.Coins)
	return &account, true, nil
}

// GetAccount serves balance and profile through the LRU cache
func (s *service) GetAccount(ctx context.Context, uid string) (*domain.Account, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgGetAccountCalled, "uid", uid)

	if cached, ok := s.cache.Get(uid); ok {
		return cached, nil
	}

	account, err := s.repo.GetAccount(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetAccountFailed, err)
	}
	if account == nil {
		return nil, fmt.Errorf(ErrMsgAccountMissingFmt, uid, domain.ErrAccountNotFound)
	}

	s.cache.Set(uid, account)
	return account, nil
}

// UpdateProfile replaces the profile and drops the cached account
func (s *service) UpdateProfile(ctx context.Context, uid string, profile domain.Profile) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgUpdateProfileCalled, "uid", uid)

	existing, err := s.repo.GetAccount(ctx, uid)
	if err != nil {
		return fmt.Errorf(ErrMsgGetAccountFailed, err)
	}
	if existing == nil {
		return fmt.Errorf(ErrMsgAccountMissingFmt, uid, domain.ErrAccountNotFound)
	}

	if err := s.repo.UpdateProfile(ctx, uid, profile); err != nil {
		return fmt.Errorf(ErrMsgUpdateProfileFailed, err)
	}

	s.cache.Invalidate(uid)
	log.Info(LogMsgProfileUpdated, "uid", uid)
	return nil
}
