package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"leasescore/internal/analysis"
	"leasescore/internal/config"
	"leasescore/internal/engine"
	"leasescore/internal/model"
	"leasescore/internal/money"
	"leasescore/internal/rates"
	"leasescore/internal/report"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "evaluate":
		cmdEvaluate(os.Args[2:])
	case "compare":
		cmdCompare(os.Args[2:])
	case "convert":
		cmdConvert(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli evaluate --deal deals/example.yaml --format md --out results/report.md")
	fmt.Println("  cli compare --deals deals/")
	fmt.Println("  cli convert --money-factor 0.00250 | --apr 6.0")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - evaluate writes json, md, html or csv; without --out the report goes to stdout")
	fmt.Println("  - compare ranks deals by total score, then market position score")
	fmt.Println("  - --config falls back to $CONFIG_PATH; its deal_file is used when --deal is omitted")
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

func cmdEvaluate(args []string) {
	fs := flag.NewFlagSet("evaluate", flag.ExitOnError)
	dealPath := fs.String("deal", "", "Path to a deal file (YAML or JSON)")
	cfgPath := fs.String("config", os.Getenv("CONFIG_PATH"), "Path to YAML config (optional)")
	format := fs.String("format", "md", "Output format: json, md, html or csv")
	outPath := fs.String("out", "", "Optional output path (default stdout)")
	_ = fs.Parse(args)

	if *dealPath == "" && *cfgPath != "" {
		cfg, err := config.LoadUnchecked(*cfgPath)
		if err != nil {
			fail(err)
		}
		*dealPath = cfg.DealFile
	}
	if *dealPath == "" {
		fmt.Println("--deal is required (or a config with deal_file)")
		os.Exit(2)
	}

	f, ok := report.ParseFormat(*format)
	if !ok {
		fmt.Printf("unknown --format %q\n", *format)
		os.Exit(2)
	}

	deal, err := config.LoadDeal(*dealPath)
	if err != nil {
		fail(err)
	}
	res, err := engine.New().Evaluate(deal.Deal)
	if err != nil {
		fail(fmt.Errorf("deal %q: %w", deal.Name, err))
	}
	r := report.NewAssembler(nil).Build(res)

	if *outPath == "" {
		out, err := r.Render(f)
		if err != nil {
			fail(err)
		}
		os.Stdout.Write(out)
		return
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		fail(err)
	}
	if f == report.FormatCSV {
		err = r.WriteCSVFile(*outPath)
	} else {
		var out []byte
		if out, err = r.Render(f); err == nil {
			err = os.WriteFile(*outPath, out, 0o644)
		}
	}
	if err != nil {
		fail(err)
	}
	fmt.Printf("Wrote %s report for %q to %s\n", f, deal.Name, *outPath)
	fmt.Printf("%s: score %.2f / %.1f, market position %.0f/100\n",
		res.Score.DealRating, res.Score.TotalScore, model.MaxTotalScore, res.Benchmark.MarketPositionScore)
}

func cmdCompare(args []string) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	dealPaths := fs.String("deals", "deals", "Comma-separated deal files or a directory")
	_ = fs.Parse(args)

	files, err := config.LoadDeals(splitPaths(*dealPaths))
	if err != nil {
		fail(err)
	}
	if len(files) == 0 {
		fail(fmt.Errorf("no deals found in %s", *dealPaths))
	}

	batch := make([]engine.NamedDeal, 0, len(files))
	for _, f := range files {
		batch = append(batch, engine.NamedDeal{Name: f.Name, Inputs: f.Deal})
	}

	var evaluated []analysis.NamedResult
	for _, br := range engine.New().EvaluateAll(batch) {
		if br.Err != nil {
			fmt.Fprintln(os.Stderr, "skipping:", br.Err)
			continue
		}
		evaluated = append(evaluated, analysis.NamedResult{Name: br.Name, Result: br.Result})
	}

	fmt.Printf("%-4s %-24s %-7s %-16s %-8s %-8s %-12s\n", "rank", "deal", "score", "rating", "market", "1%", "monthly")
	for _, d := range analysis.Rank(evaluated) {
		res := d.Result
		fmt.Printf(
			"%-4d %-24s %-7.2f %-16s %-8.0f %-8s %-12s\n",
			d.Rank,
			d.Name,
			res.Score.TotalScore,
			res.Score.DealRating,
			res.Benchmark.MarketPositionScore,
			money.Percent(res.Derived.PaymentToMSRPRatio, 2),
			money.Format(res.Derived.TotalMonthlyPayment),
		)
	}
}

func cmdConvert(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	mf := fs.Float64("money-factor", -1, "Money factor to convert to APR")
	apr := fs.Float64("apr", -1, "APR percent to convert to a money factor")
	_ = fs.Parse(args)

	switch {
	case *mf >= 0 && *apr < 0:
		fmt.Printf("money factor %s = %s APR\n", money.Fixed(*mf, 5), money.Percent(rates.APRFromMoneyFactor(*mf), 2))
	case *apr >= 0 && *mf < 0:
		fmt.Printf("%s APR = money factor %s\n", money.Percent(*apr, 2), money.Fixed(rates.MoneyFactorFromAPR(*apr), 5))
	default:
		fmt.Println("exactly one of --money-factor or --apr is required")
		os.Exit(2)
	}
}

func splitPaths(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
