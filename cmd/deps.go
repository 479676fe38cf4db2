package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abhisek/bilim/internal/bank"
	"github.com/abhisek/bilim/internal/content"
	"github.com/abhisek/bilim/internal/i18n"
	"github.com/abhisek/bilim/internal/llm"
	"github.com/abhisek/bilim/internal/profile"
	"github.com/abhisek/bilim/internal/quizgen"
	"github.com/abhisek/bilim/internal/store"
	storeredis "github.com/abhisek/bilim/internal/store/redis"
)

// Storage backends accepted by --store.
const (
	storeSQLite = "sqlite"
	storeRedis  = "redis"
	storeMemory = "memory"
)

// deps holds the services shared by the TUI and the console commands.
type deps struct {
	kv       store.KV
	content  *content.Service
	profile  *profile.Store
	i18n     *i18n.Store
	provider llm.Provider
	closers  []func() error
}

// Close releases the storage backend.
func (d *deps) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			slog.Warn("close", "error", err)
		}
	}
}

// openDeps opens storage, loads the saved profile and language and builds
// the content service.
func openDeps(cmd *cobra.Command) (*deps, error) {
	ctx := cmd.Context()
	v := viperForCmd(cmd)

	d := &deps{}
	kv, closer, err := openKV(ctx, v)
	if err != nil {
		return nil, err
	}
	d.kv = kv
	if closer != nil {
		d.closers = append(d.closers, closer)
	}

	d.profile = profile.NewStore(kv)
	if err := d.profile.Load(ctx); err != nil {
		d.Close()
		return nil, fmt.Errorf("load profile: %w", err)
	}

	d.i18n, err = i18n.New(kv)
	if err != nil {
		d.Close()
		return nil, err
	}
	if err := d.i18n.Load(ctx); err != nil {
		d.Close()
		return nil, fmt.Errorf("load language: %w", err)
	}
	if l := v.GetString("lang"); l != "" {
		lang, err := i18n.Parse(l)
		if err != nil {
			d.Close()
			return nil, err
		}
		if err := d.i18n.Use(lang); err != nil {
			d.Close()
			return nil, fmt.Errorf("use language %q: %w", lang, err)
		}
	}

	cfg := content.DefaultConfig()
	if v.GetBool("fast") {
		cfg = cfg.WithoutDelays()
	}

	d.provider = llm.NewProviderFromEnv(ctx)
	gen := quizgen.New(d.provider, quizgen.DefaultConfig())
	d.content = content.New(bank.Default(), gen, cfg)

	return d, nil
}

// openKV opens the backend selected by --store. The returned closer may be
// nil.
func openKV(ctx context.Context, v *viper.Viper) (store.KV, func() error, error) {
	switch backend := v.GetString("store"); backend {
	case storeMemory:
		return store.NewMemory(), nil, nil

	case storeRedis:
		kv, err := storeredis.Dial(ctx, v.GetString("redis-addr"))
		if err != nil {
			return nil, nil, fmt.Errorf("open redis store: %w", err)
		}
		return kv, kv.Close, nil

	case storeSQLite, "":
		path, err := resolveDBPath(v)
		if err != nil {
			return nil, nil, fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("open store: %w", err)
		}
		return st, st.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown store %q (want sqlite, redis or memory)", backend)
	}
}

// resolveDBPath returns the database path using --db (or BILIM_DB through
// viper) and then the default XDG path.
func resolveDBPath(v *viper.Viper) (string, error) {
	if p := v.GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// logPath is where the TUI writes its log, next to the database.
func logPath(v *viper.Viper) (string, error) {
	db, err := resolveDBPath(v)
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(db), "bilim.log"), nil
}
