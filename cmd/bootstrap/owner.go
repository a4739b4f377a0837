package bootstrap

import (
	"context"
	"log/slog"

	"beauty-booking/internal/domain/auth"
	"beauty-booking/internal/pkg/config"
	"beauty-booking/internal/pkg/errs"
	"beauty-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var OwnerModule = fx.Module("owner",
	fx.Invoke(EnsureOwnerAccount),
)

func EnsureOwnerAccount(lc fx.Lifecycle, cfg config.Config, cmds commands.AuthCommands) {
	if !cfg.Owner.Enabled() {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			reg, err := auth.NewRegistration(cfg.Owner.Name, cfg.Owner.Email, cfg.Owner.Password)
			if err != nil {
				return errs.Wrap(err, "invalid owner account settings")
			}

			created, err := cmds.EnsureOwner(ctx, reg)
			if err != nil {
				return errs.Wrap(err, "failed to ensure owner account")
			}
			if created {
				slog.Info("オーナーアカウントを作成しました", "email", reg.Email().Value())
			}
			return nil
		},
	})
}
