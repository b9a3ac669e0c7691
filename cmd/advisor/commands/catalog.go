package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/cryptoadvisor/internal/catalog"
	"github.com/wonny/cryptoadvisor/internal/contracts"
	"github.com/wonny/cryptoadvisor/internal/report"
	"github.com/wonny/cryptoadvisor/pkg/logger"
)

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "카탈로그 관리",
	Long: `자산 카탈로그를 조회, 검증, 적재합니다.

Subcommands:
  list      - 카탈로그 목록 (--view sustainable|low-risk)
  validate  - YAML 카탈로그 파일 검증
  seed      - 카탈로그를 PostgreSQL에 저장

Example:
  go run ./cmd/advisor catalog list --view low-risk
  go run ./cmd/advisor catalog validate ./catalog.yaml
  go run ./cmd/advisor catalog seed --from ./catalog.yaml`,
}

var (
	catalogListCmd = &cobra.Command{
		Use:   "list",
		Short: "카탈로그 목록",
		Args:  cobra.NoArgs,
		RunE:  runCatalogList,
	}

	catalogValidateCmd = &cobra.Command{
		Use:   "validate PATH",
		Short: "YAML 카탈로그 파일 검증",
		Args:  cobra.ExactArgs(1),
		RunE:  runCatalogValidate,
	}

	catalogSeedCmd = &cobra.Command{
		Use:   "seed",
		Short: "카탈로그를 PostgreSQL에 저장 (DATABASE_URL 필요)",
		Args:  cobra.NoArgs,
		RunE:  runCatalogSeed,
	}

	catalogView string
	seedFrom    string
)

// Views accepted by catalog list --view
const (
	viewAll         = "all"
	viewSustainable = "sustainable"
	viewLowRisk     = "low-risk"
)

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogSeedCmd)

	catalogListCmd.Flags().StringVar(&catalogView, "view", viewAll, "view (all|sustainable|low-risk)")
	catalogSeedCmd.Flags().StringVar(&seedFrom, "from", "", "YAML file to seed (default: bundled reference catalog)")
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	a, err := bootstrap(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer a.Close()

	snap := a.store.Current()

	var (
		title  string
		assets []contracts.AssetRecord
	)
	switch catalogView {
	case viewAll, "":
		title, assets = "Cryptocurrency Catalog", snap.Assets()
	case viewSustainable:
		title, assets = "Sustainable Assets", snap.Sustainable()
	case viewLowRisk:
		title, assets = "Low-Risk Assets", snap.LowRisk()
	default:
		return fmt.Errorf("unknown view %q (want all, sustainable or low-risk)", catalogView)
	}

	return emit(cmd, assets, report.AssetList(title, assets))
}

// validationResult is the JSON shape of catalog validate
type validationResult struct {
	Path    string   `json:"path"`
	Valid   bool     `json:"valid"`
	Version string   `json:"version,omitempty"`
	Assets  int      `json:"assets,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func runCatalogValidate(cmd *cobra.Command, args []string) error {
	path := args[0]
	res := validationResult{Path: path}

	snap, err := catalog.LoadYAML(path)
	if err != nil {
		var verrs catalog.ValidationErrors
		if errors.As(err, &verrs) {
			for _, ve := range verrs {
				res.Errors = append(res.Errors, ve.Error())
			}
		} else {
			res.Errors = []string{err.Error()}
		}

		md := fmt.Sprintf("❌ **%s** is invalid:\n\n", path)
		for _, e := range res.Errors {
			md += "- " + e + "\n"
		}
		if emitErr := emit(cmd, res, md); emitErr != nil {
			return emitErr
		}
		return fmt.Errorf("catalog %s is invalid", path)
	}

	res.Valid = true
	res.Version = snap.Version()
	res.Assets = snap.Len()

	md := fmt.Sprintf("✅ **%s** is valid: %d assets (version `%s`)\n", path, res.Assets, res.Version)
	return emit(cmd, res, md)
}

func runCatalogSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(true)
	if err != nil {
		return err
	}

	var snap *catalog.Snapshot
	if seedFrom != "" {
		snap, err = catalog.LoadYAML(seedFrom)
	} else {
		snap, err = catalog.Reference()
	}
	if err != nil {
		return err
	}

	a := &app{cfg: cfg, log: logger.New(cfg)}
	defer a.Close()

	repo, err := a.openRepository(ctx)
	if err != nil {
		return err
	}
	if err := repo.Save(ctx, snap); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	a.log.WithFields(map[string]interface{}{
		"version": snap.Version(),
		"assets":  snap.Len(),
	}).Info("Catalog seeded")

	md := fmt.Sprintf("✅ Seeded %d assets as version `%s`\n", snap.Len(), snap.Version())
	return emit(cmd, map[string]interface{}{"version": snap.Version(), "assets": snap.Len()}, md)
}
