package service

import (
	"context"
	"log"
	"strings"

	"brightline/internal/ratelimit"
	"brightline/internal/validation"
)

// ContactForm is the raw contact form input. Company is the honeypot field:
// the rendered form hides it, so any value there came from a bot.
type ContactForm struct {
	Name    string
	Email   string
	Message string
	Company string
}

type ContactStatus int

const (
	ContactSent ContactStatus = iota
	ContactSpam
	ContactInvalid
	ContactRateLimited
	ContactMailFailed
	ContactInternalError
)

// ContactResult carries the outcome of one submission attempt. FieldErrors
// is set only for ContactInvalid; RateLimit is set whenever the limiter ran.
type ContactResult struct {
	Status      ContactStatus
	FieldErrors map[string]string
	RateLimit   ratelimit.Result
}

// ContactNotifier is the slice of the mailer this service needs.
type ContactNotifier interface {
	SendContactNotification(sub validation.ContactSubmission, ip string) error
}

type ContactService interface {
	Submit(ctx context.Context, form ContactForm, ip string) ContactResult
}

type contactService struct {
	limiter  ratelimit.Limiter
	notifier ContactNotifier
}

func NewContactService(limiter ratelimit.Limiter, notifier ContactNotifier) ContactService {
	return &contactService{limiter: limiter, notifier: notifier}
}

// Submit runs the whole contact flow: honeypot check, validation, rate
// limit, mail dispatch. Single pass, no retries. The rate limit counter is
// bumped before mail is sent and is not rolled back if sending fails.
func (s *contactService) Submit(ctx context.Context, form ContactForm, ip string) ContactResult {
	if strings.TrimSpace(form.Company) != "" {
		// Silent reject. The caller answers as if an empty form came in so
		// the bot never learns it was detected.
		log.Printf("[contact] honeypot tripped from %s", ip)
		return ContactResult{Status: ContactSpam}
	}

	sub, fieldErrs := validation.Contact(form.Name, form.Email, form.Message)
	if fieldErrs != nil {
		return ContactResult{Status: ContactInvalid, FieldErrors: fieldErrs}
	}

	rl, err := s.limiter.Allow(ctx, ip)
	if err != nil {
		// Limiter state unreadable: deny rather than let a broken counter
		// open the floodgates.
		log.Printf("[contact] rate limiter error for %s: %v", ip, err)
		return ContactResult{Status: ContactInternalError}
	}
	if !rl.Allowed {
		return ContactResult{Status: ContactRateLimited, RateLimit: rl}
	}

	if err := s.notifier.SendContactNotification(sub, ip); err != nil {
		log.Printf("[contact] mail dispatch failed: %v", err)
		return ContactResult{Status: ContactMailFailed, RateLimit: rl}
	}

	return ContactResult{Status: ContactSent, RateLimit: rl}
}
