package main

import (
	"flag"
	"fmt"
	"os"

	"leasescore/internal/engine"
	"leasescore/internal/model"
	"leasescore/internal/money"
	"leasescore/internal/report"
)

// Demo:
// - Evaluate a handful of built-in deals, including one that is rejected
// - Print the score, market position and findings of each
// - Optionally write the full Markdown report of the first deal
func main() {
	outMD := flag.String("out", "", "Optional path to write the first deal's Markdown report")
	flag.Parse()

	deals := []engine.NamedDeal{
		{Name: "Balanced APR deal", Inputs: model.DealInputs{
			MSRP: 40000, NegotiatedPrice: 37000, MonthlyPayment: 350, LeaseTermMonths: 36,
			SalesTaxPercent: 7, RateMode: model.RateModeAPR, APRPercent: model.Float(5.0),
		}},
		{Name: "Missing MSRP", Inputs: model.DealInputs{
			NegotiatedPrice: 30000, MonthlyPayment: 300,
		}},
		{Name: "Heavy down payment", Inputs: model.DealInputs{
			MSRP: 40000, NegotiatedPrice: 37000, MonthlyPayment: 350, DownPayment: 4800,
			RateMode: model.RateModeMoneyFactor, MoneyFactor: model.Float(0.00250),
		}},
		{Name: "Residual above price", Inputs: model.DealInputs{
			MSRP: 40000, NegotiatedPrice: 37000, MonthlyPayment: 350,
			ResidualValue: model.Float(38000),
		}},
		{Name: "Long over-MSRP lease", Inputs: model.DealInputs{
			MSRP: 40000, NegotiatedPrice: 41000, MonthlyPayment: 700, DownPayment: 5000,
			LeaseTermMonths: 48, ResidualValue: model.Float(15000),
			RateMode: model.RateModeAPR, APRPercent: model.Float(10),
		}},
	}

	results := engine.New().EvaluateAll(deals)

	fmt.Printf("%-22s %-6s %-16s %-7s %-9s %-6s %-5s\n", "deal", "score", "rating", "market", "monthly", "risks", "opts")
	for _, br := range results {
		if br.Err != nil {
			fmt.Printf("%-22s rejected: %v\n", br.Name, br.Err)
			continue
		}
		res := br.Result
		fmt.Printf(
			"%-22s %-6.2f %-16s %-7.0f %-9s %-6d %-5d\n",
			br.Name,
			res.Score.TotalScore,
			res.Score.DealRating,
			res.Benchmark.MarketPositionScore,
			money.Format(res.Derived.TotalMonthlyPayment),
			len(res.Risks),
			len(res.Optimizations),
		)
	}

	for _, br := range results {
		if br.Err != nil {
			continue
		}
		fmt.Printf("\n%s\n", br.Name)
		for _, in := range br.Result.Score.Insights {
			fmt.Printf("  [%s] %s\n", in.Type, in.Message)
		}
		for _, r := range br.Result.Risks {
			fmt.Printf("  risk %-6s %s: %s\n", r.Level, r.Category, r.Title)
		}
	}

	if *outMD != "" && results[0].Err == nil {
		md := report.NewAssembler(nil).Build(results[0].Result).Markdown()
		if err := os.WriteFile(*outMD, []byte(md), 0o644); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		fmt.Printf("\nWrote report: %s\n", *outMD)
	}
}
