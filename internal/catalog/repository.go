package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/wonny/cryptoadvisor/internal/contracts"
)

// Schema creates the catalog tables
const Schema = `
CREATE SCHEMA IF NOT EXISTS advisor;

CREATE TABLE IF NOT EXISTS advisor.catalog_snapshots (
	version    TEXT PRIMARY KEY,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS advisor.catalog_assets (
	version              TEXT    NOT NULL REFERENCES advisor.catalog_snapshots(version) ON DELETE CASCADE,
	position             INT     NOT NULL,
	symbol               TEXT    NOT NULL,
	name                 TEXT    NOT NULL,
	market_cap_rank      INT     NOT NULL,
	market_cap           NUMERIC NOT NULL,
	price_usd            NUMERIC NOT NULL,
	price_change_24h     DOUBLE PRECISION NOT NULL,
	price_change_7d      DOUBLE PRECISION NOT NULL,
	price_change_30d     DOUBLE PRECISION NOT NULL,
	volume_24h           NUMERIC NOT NULL,
	energy_consumption   TEXT    NOT NULL,
	consensus_mechanism  TEXT    NOT NULL,
	sustainability_score INT     NOT NULL,
	volatility           TEXT    NOT NULL,
	adoption_score       INT     NOT NULL,
	technology_maturity  INT     NOT NULL,
	regulatory_clarity   INT     NOT NULL,
	use_cases            TEXT[]  NOT NULL DEFAULT '{}',
	risk_level           TEXT    NOT NULL,
	PRIMARY KEY (version, symbol)
);
`

// Repository persists catalog snapshots in PostgreSQL
// ⭐ SSOT: 카탈로그 DB 접근은 여기서만
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new Repository instance
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Name returns the source name
func (r *Repository) Name() string { return "postgres" }

// EnsureSchema creates the catalog tables if missing
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("ensure catalog schema: %w", err)
	}
	return nil
}

// Load reads the most recent snapshot, preserving stored order
func (r *Repository) Load(ctx context.Context) (*Snapshot, error) {
	var version string
	err := r.db.QueryRow(ctx, `
		SELECT version FROM advisor.catalog_snapshots
		ORDER BY created_at DESC
		LIMIT 1
	`).Scan(&version)
	if err != nil {
		return nil, fmt.Errorf("query latest catalog version: %w", err)
	}

	return r.LoadVersion(ctx, version)
}

// LoadVersion reads one stored snapshot by version
func (r *Repository) LoadVersion(ctx context.Context, version string) (*Snapshot, error) {
	query := `
		SELECT
			symbol, name, market_cap_rank,
			market_cap::text, price_usd::text,
			price_change_24h, price_change_7d, price_change_30d,
			volume_24h::text,
			energy_consumption, consensus_mechanism,
			sustainability_score, volatility, adoption_score,
			technology_maturity, regulatory_clarity,
			use_cases, risk_level
		FROM advisor.catalog_assets
		WHERE version = $1
		ORDER BY position
	`

	rows, err := r.db.Query(ctx, query, version)
	if err != nil {
		return nil, fmt.Errorf("query catalog assets: %w", err)
	}
	defer rows.Close()

	records := make([]contracts.AssetRecord, 0)
	for rows.Next() {
		var (
			rec                   contracts.AssetRecord
			marketCap, price, vol string
		)
		err := rows.Scan(
			&rec.Symbol, &rec.Name, &rec.MarketCapRank,
			&marketCap, &price,
			&rec.PriceChange24h, &rec.PriceChange7d, &rec.PriceChange30d,
			&vol,
			&rec.EnergyConsumption, &rec.ConsensusMechanism,
			&rec.SustainabilityScore, &rec.Volatility, &rec.AdoptionScore,
			&rec.TechnologyMaturity, &rec.RegulatoryClarity,
			&rec.UseCases, &rec.RiskLevel,
		)
		if err != nil {
			return nil, fmt.Errorf("scan catalog asset: %w", err)
		}

		if rec.MarketCap, err = decimal.NewFromString(marketCap); err != nil {
			return nil, fmt.Errorf("parse market_cap of %s: %w", rec.Symbol, err)
		}
		if rec.PriceUSD, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("parse price_usd of %s: %w", rec.Symbol, err)
		}
		if rec.Volume24h, err = decimal.NewFromString(vol); err != nil {
			return nil, fmt.Errorf("parse volume_24h of %s: %w", rec.Symbol, err)
		}

		records = append(records, rec)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate catalog assets: %w", rows.Err())
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("catalog version %s has no assets", version)
	}

	return NewSnapshot(records, version)
}

// Save stores a snapshot under its version in one transaction
func (r *Repository) Save(ctx context.Context, snap *Snapshot) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin catalog save: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO advisor.catalog_snapshots (version, created_at)
		VALUES ($1, NOW())
		ON CONFLICT (version) DO UPDATE SET created_at = NOW()
	`, snap.Version())
	if err != nil {
		return fmt.Errorf("insert catalog version: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM advisor.catalog_assets WHERE version = $1`, snap.Version()); err != nil {
		return fmt.Errorf("clear catalog version: %w", err)
	}

	batch := &pgx.Batch{}
	for i, rec := range snap.Assets() {
		batch.Queue(`
			INSERT INTO advisor.catalog_assets (
				version, position, symbol, name, market_cap_rank,
				market_cap, price_usd,
				price_change_24h, price_change_7d, price_change_30d,
				volume_24h, energy_consumption, consensus_mechanism,
				sustainability_score, volatility, adoption_score,
				technology_maturity, regulatory_clarity, use_cases, risk_level
			) VALUES (
				$1, $2, $3, $4, $5,
				$6::numeric, $7::numeric,
				$8, $9, $10,
				$11::numeric, $12, $13,
				$14, $15, $16,
				$17, $18, $19, $20
			)`,
			snap.Version(), i, rec.Symbol, rec.Name, rec.MarketCapRank,
			rec.MarketCap.String(), rec.PriceUSD.String(),
			rec.PriceChange24h, rec.PriceChange7d, rec.PriceChange30d,
			rec.Volume24h.String(), string(rec.EnergyConsumption), rec.ConsensusMechanism,
			rec.SustainabilityScore, string(rec.Volatility), rec.AdoptionScore,
			rec.TechnologyMaturity, rec.RegulatoryClarity, rec.UseCases, string(rec.RiskLevel),
		)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert catalog assets: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit catalog save: %w", err)
	}

	return nil
}
