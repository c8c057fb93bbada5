package service

import (
	"log/slog"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
)

var ErrGatewayNotInitialized = errors.New("identity gateway used before Initialize")

// IdentityService is the remote side of the identity gateway. It receives an
// applicant and answers whether the identity is genuine.
type IdentityService interface {
	CallService(applicantName string, applicantAge int, applicantAddress string) (bool, error)
}

// IdentityVerifierServiceGateway is the production IdentityVerifier. Each
// validation opens a session with the identity service, asks it about the
// applicant and closes the session again.
type IdentityVerifierServiceGateway struct {
	mu sync.Mutex

	service IdentityService
	now     func() time.Time
	logger  *slog.Logger

	initialized   bool
	connected     bool
	sessions      int
	lastCheckTime time.Time
}

func NewIdentityVerifierServiceGateway(service IdentityService) *IdentityVerifierServiceGateway {
	return &IdentityVerifierServiceGateway{
		service: service,
		now:     time.Now,
		logger:  slog.Default(),
	}
}

func (g *IdentityVerifierServiceGateway) SetClock(now func() time.Time) { g.now = now }
func (g *IdentityVerifierServiceGateway) SetLogger(logger *slog.Logger) { g.logger = logger }

func (g *IdentityVerifierServiceGateway) Initialize() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.service == nil {
		return errors.New("identity gateway: missing IdentityService wiring")
	}
	g.initialized = true
	return nil
}

func (g *IdentityVerifierServiceGateway) Validate(
	applicantName string,
	applicantAge int,
	applicantAddress string,
) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.initialized {
		return false, ErrGatewayNotInitialized
	}

	g.connect()
	defer g.disconnect()

	isValidIdentity, err := g.service.CallService(applicantName, applicantAge, applicantAddress)
	if err != nil {
		return false, errors.Wrap(err, "calling identity service")
	}
	g.lastCheckTime = g.now()

	g.logger.Debug("identity checked",
		"valid_identity", isValidIdentity,
		"checked_at", g.lastCheckTime)

	return isValidIdentity, nil
}

// LastCheckTime is the time of the last successful call to the identity
// service, or the zero time if there was none.
func (g *IdentityVerifierServiceGateway) LastCheckTime() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastCheckTime
}

// Connected reports whether a session with the identity service is open.
func (g *IdentityVerifierServiceGateway) Connected() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.connected
}

// Sessions counts the sessions opened with the identity service.
func (g *IdentityVerifierServiceGateway) Sessions() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.sessions
}

func (g *IdentityVerifierServiceGateway) connect() {
	g.connected = true
	g.sessions++
}

func (g *IdentityVerifierServiceGateway) disconnect() {
	g.connected = false
}
