package email

import (
	"context"
	"fmt"

	"github.com/redmonkez12/pizza-dashboard/internal/logging"
)

// LogService writes account links to the log instead of sending mail.
// Used in development when no SMTP host is configured.
type LogService struct {
	frontendURL string
	logger      *logging.Logger
}

func NewLogService(frontendURL string, logger *logging.Logger) *LogService {
	return &LogService{frontendURL: frontendURL, logger: logger}
}

func (s *LogService) SendVerificationEmail(_ context.Context, toEmail, token string) error {
	link := fmt.Sprintf("%s/auth/verify-email?token=%s", s.frontendURL, token)
	s.logger.Info("verification link", "email", toEmail, "link", link)
	return nil
}

func (s *LogService) SendPasswordResetEmail(_ context.Context, toEmail, token string) error {
	link := fmt.Sprintf("%s/auth/reset-password?token=%s", s.frontendURL, token)
	s.logger.Info("password reset link", "email", toEmail, "link", link)
	return nil
}
