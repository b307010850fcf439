package main

import (
	"github.com/spf13/cobra"

	"github.com/DjordjeVuckovic/irprep/internal/cli"
	"github.com/DjordjeVuckovic/irprep/internal/expdesc"
)

const toolName = "gen_desc"

func main() {
	cli.LoadEnv(toolName)

	var cfg descConfig
	root := &cobra.Command{
		Use:           toolName,
		Short:         "Generate experiment descriptors for the re-ranking pipeline",
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&cfg.OutDir, "outdir", "", "output directory")
	pf.StringVar(&cfg.RelDescPath, "rel_desc_path", "", "descriptor path prefix stored in the manifest")
	pf.StringVar(&cfg.ExperSubdir, "exper_subdir", expdesc.DefaultExperSubdir, "top-level sub-directory for experiment results")
	_ = root.MarkPersistentFlagRequired("outdir")
	_ = root.MarkPersistentFlagRequired("rel_desc_path")

	root.AddCommand(newBM25Cmd(&cfg), newPlanCmd(&cfg))
	cli.Execute(root)
}

func newBM25Cmd(cfg *descConfig) *cobra.Command {
	var bm25 bm25Config
	cmd := &cobra.Command{
		Use:   "bm25",
		Short: "One BM25 descriptor per index field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			params := expdesc.BM25Params{K1: bm25.K1, B: bm25.B, Fields: bm25.Fields}
			if err := params.Validate(); err != nil {
				return err
			}
			_, err := expdesc.Generate(cfg.generatorConfig(bm25.DescName, bm25.SubDir), expdesc.BM25Extractors(params))
			return err
		},
	}
	f := cmd.Flags()
	f.Float64Var(&bm25.B, "b", 0, "BM25 parameter b")
	f.Float64Var(&bm25.K1, "k1", 0, "BM25 parameter k1")
	f.StringSliceVar(&bm25.Fields, "fields", []string{"text"}, "index fields, comma separated")
	f.StringVar(&bm25.DescName, "desc_name", expdesc.BM25DescName, "manifest file name")
	f.StringVar(&bm25.SubDir, "sub_dir", expdesc.BM25SubDir, "sub-directory for extractor files")
	_ = cmd.MarkFlagRequired("b")
	_ = cmd.MarkFlagRequired("k1")
	return cmd
}

func newPlanCmd(cfg *descConfig) *cobra.Command {
	var planPath string
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Descriptors for the extractors listed in a YAML plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			plan, err := expdesc.LoadPlan(planPath)
			if err != nil {
				return err
			}
			_, err = expdesc.Generate(cfg.generatorConfig(plan.DescName, plan.SubDir), plan.All())
			return err
		},
	}
	cmd.Flags().StringVar(&planPath, "plan", "", "YAML plan file")
	_ = cmd.MarkFlagRequired("plan")
	return cmd
}
