package bootstrap

import (
	"time"

	"hosteed/internal/handler/middleware"
	"hosteed/internal/pkg/config"
	"hosteed/internal/pkg/errs"
	"hosteed/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
		func(s *jwt.Service) middleware.TokenValidator { return s },
	),
)

// NewJWTService only validates tokens; they are issued by the account service with the shared secret.
func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	accessTokenDuration, err := time.ParseDuration(cfg.JWT.AccessTokenDuration)
	if err != nil {
		return nil, errs.Wrap(err, "invalid JWT_ACCESS_TOKEN_DURATION")
	}
	return jwt.NewService(cfg.JWT.Secret, accessTokenDuration), nil
}
