package auth

import (
	"github.com/casbin/casbin/v2"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"
)

// adminRoutePattern covers every admin endpoint; keyMatch2 in the model
// expands the trailing wildcard.
const adminRoutePattern = "/api/admin/*"

// CasbinService owns the enforcer backing the admin route gate. Policies
// persist in the application database through the gorm adapter, so the
// approval console keeps its grants across restarts.
type CasbinService struct{ E *casbin.Enforcer }

// NewCasbinService builds an enforcer from the model file and the shared
// gorm connection, then loads the persisted policies.
func NewCasbinService(db *gorm.DB, modelPath string) (*CasbinService, error) {
	adp, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, err
	}
	E, err := casbin.NewEnforcer(modelPath, adp)
	if err != nil {
		return nil, err
	}
	if err := E.LoadPolicy(); err != nil {
		return nil, err
	}
	return &CasbinService{E}, nil
}

// EnsureBaselinePolicies installs the grants the application cannot run
// without: the admin role's access to the approval console routes.
// AddPolicy is idempotent, an already-present rule returns false rather
// than an error, so this is safe on every boot.
func (s *CasbinService) EnsureBaselinePolicies() error {
	for _, method := range []string{"GET", "POST", "PUT", "DELETE"} {
		if _, err := s.E.AddPolicy("role_admin", adminRoutePattern, method); err != nil {
			return err
		}
	}
	return s.E.SavePolicy()
}
