package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/iudanet/pairsync/internal/models"
	"github.com/iudanet/pairsync/internal/session"
	"github.com/iudanet/pairsync/internal/store"
	"github.com/iudanet/pairsync/internal/store/boltdb"
	"github.com/iudanet/pairsync/internal/transport"
)

var demoDBPath string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a two-peer sync session inside one process",
	Long: `Starts a host and a client over the in-process pipe transport,
lets both sides exchange their diverged snapshots and prints the
merged result. With --db the host state is persisted in BoltDB.`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&demoDBPath, "db", "", "Path to host BoltDB database (in-memory if empty)")
}

func runDemo(cmd *cobra.Command, args []string) error {
	logger := buildLogger()

	cfg, err := sessionConfig()
	if err != nil {
		return err
	}
	// В demo нет UI, задержка отображения не нужна.
	cfg.SyncSettleDelay = 0

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	var hostStore store.StateStore
	if demoDBPath != "" {
		boltStore, err := boltdb.New(ctx, demoDBPath)
		if err != nil {
			return fmt.Errorf("failed to open host database: %w", err)
		}
		defer func() {
			if err := boltStore.Close(); err != nil {
				logger.Error("failed to close database", "error", err)
			}
		}()
		if err := boltStore.ReplaceState(ctx, hostState()); err != nil {
			return fmt.Errorf("failed to seed host state: %w", err)
		}
		hostStore = boltStore
	} else {
		hostStore = store.NewMemoryStore(hostState())
	}

	clientStore := store.NewMemoryStore(clientState())

	pipe := transport.NewPipe()

	host := session.NewManager(pipe, hostStore,
		session.WithLogger(logger.With("peer", "host")),
		session.WithConfig(cfg),
	)
	client := session.NewManager(pipe, clientStore,
		session.WithLogger(logger.With("peer", "client")),
		session.WithConfig(cfg),
	)
	defer host.Disconnect()
	defer client.Disconnect()

	hostID, err := host.StartHosting(ctx)
	if err != nil {
		return fmt.Errorf("failed to start hosting: %w", err)
	}

	if err := client.JoinSession(ctx, hostID); err != nil {
		return fmt.Errorf("failed to join session: %w", err)
	}

	// Обе стороны шлют SYNC_REQUEST при открытии канала; ждем, пока
	// оба снапшота сойдутся к одинаковому результату.
	group, waitCtx := errgroup.WithContext(ctx)
	group.Go(func() error { return waitConverged(waitCtx, hostStore, clientStore) })

	if err := group.Wait(); err != nil {
		return fmt.Errorf("sync did not converge: %w", err)
	}

	merged, err := hostStore.GetState(ctx)
	if err != nil {
		return err
	}

	fmt.Println("Merged state:")
	for name, entities := range merged.Collections {
		fmt.Printf("  %s: %d entities\n", name, len(entities))
		for _, entity := range entities {
			data, _ := json.Marshal(entity)
			fmt.Printf("    %s\n", data)
		}
	}

	return nil
}

// waitConverged опрашивает оба хранилища, пока их снапшоты
// (без сессионных полей) не станут идентичными.
func waitConverged(ctx context.Context, a, b store.StateStore) error {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			stateA, err := a.GetState(ctx)
			if err != nil {
				return err
			}
			stateB, err := b.GetState(ctx)
			if err != nil {
				return err
			}

			dataA, err := json.Marshal(stateA.Sanitized())
			if err != nil {
				return err
			}
			dataB, err := json.Marshal(stateB.Sanitized())
			if err != nil {
				return err
			}

			if len(stateA.Log) > 0 && string(dataA) == string(dataB) {
				return nil
			}
		}
	}
}

// hostState возвращает демонстрационное состояние хоста:
// два инвойса, один из которых клиент успел удалить.
func hostState() *models.Snapshot {
	state := models.NewSnapshot()
	state.Collections["invoices"] = []models.Entity{
		{"id": "inv-1", "customer": "Acme", "paidAmount": float64(50)},
		{"id": "inv-2", "customer": "Globex", "paidAmount": float64(0)},
	}
	state.Sequences["invoices"] = models.Sequence{Prefix: "INV-", Next: 3}
	state.Log = []models.LogEntry{
		{ID: uuid.New().String(), EntityID: "inv-1", Action: models.LogActionCreate, Timestamp: 100},
		{ID: uuid.New().String(), EntityID: "inv-2", Action: models.LogActionCreate, Timestamp: 110},
	}
	return state
}

// clientState возвращает демонстрационное состояние клиента:
// больший прогресс оплаты по inv-1 и удаленный inv-2.
func clientState() *models.Snapshot {
	state := models.NewSnapshot()
	state.Collections["invoices"] = []models.Entity{
		{"id": "inv-1", "customer": "Acme", "paidAmount": float64(120)},
	}
	state.Sequences["invoices"] = models.Sequence{Prefix: "INV-", Next: 5}
	state.Log = []models.LogEntry{
		{ID: uuid.New().String(), EntityID: "inv-1", Action: models.LogActionCreate, Timestamp: 100},
		{ID: uuid.New().String(), EntityID: "inv-2", Action: models.LogActionDelete, Timestamp: 200},
	}
	return state
}
