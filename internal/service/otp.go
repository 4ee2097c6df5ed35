package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/google/uuid"

	"rentalhq-backend/internal/logger"
)

type pendingOTP struct {
	phone     string
	code      string
	expiresAt time.Time
}

// simulatedOTPProvider generates real codes but performs no SMS delivery:
// the code is written to the server log instead. Codes are single-use and
// expire after the configured TTL.
type simulatedOTPProvider struct {
	mu      sync.Mutex
	pending map[string]pendingOTP
	ttl     time.Duration
}

func NewSimulatedOTPProvider(ttl time.Duration) OTPProvider {
	return &simulatedOTPProvider{
		pending: make(map[string]pendingOTP),
		ttl:     ttl,
	}
}

func (p *simulatedOTPProvider) SendOTP(ctx context.Context, phone string) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", fmt.Errorf("failed to generate confirmation code: %w", err)
	}

	token := uuid.NewString()
	p.mu.Lock()
	p.pending[token] = pendingOTP{
		phone:     phone,
		code:      code,
		expiresAt: time.Now().Add(p.ttl),
	}
	p.mu.Unlock()

	// Simulated delivery: no SMS gateway is wired up.
	logger.Info("OTP issued (simulated delivery)", "phone", phone, "code", code)
	return token, nil
}

func (p *simulatedOTPProvider) ValidateOTP(ctx context.Context, token, code string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	pend, ok := p.pending[token]
	if !ok {
		return ErrInvalidOTP
	}
	if time.Now().After(pend.expiresAt) {
		delete(p.pending, token)
		return ErrInvalidOTP
	}
	if pend.code != code {
		return ErrInvalidOTP
	}

	delete(p.pending, token)
	return nil
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
