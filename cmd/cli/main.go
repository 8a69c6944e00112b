package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"deal-analyzer/internal/config"
	"deal-analyzer/internal/deal"
	"deal-analyzer/internal/forms"
	"deal-analyzer/internal/model"
	"deal-analyzer/internal/property"
	"deal-analyzer/internal/strategy"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "analyze":
		err = cmdAnalyze(os.Args[2:])
	case "matrix":
		cmdMatrix()
	case "amortize":
		err = cmdAmortize(os.Args[2:])
	case "properties":
		err = cmdProperties(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli analyze --scenario examples/scenarios/purchase_rent.yaml [--config deal.yaml] [--out results/breakdown.csv]")
	fmt.Println("              [--properties examples/properties.yaml --property elm-12]")
	fmt.Println("  cli matrix")
	fmt.Println("  cli amortize --principal 90000 --rate 7 --years 15 [--months 12] [--out results/schedule.csv]")
	fmt.Println("  cli properties --file examples/properties.yaml [--merge more.yaml --out merged.yaml]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - --property fills empty buy fields (arv, purchase price, sq ft, monthly tax) from the property list")
}

func cmdAnalyze(args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	scenarioPath := fs.String("scenario", "", "Path to scenario YAML")
	cfgPath := fs.String("config", "", "Optional: YAML config for engine options")
	outPath := fs.String("out", "", "Optional: write the breakdown as CSV")
	propsPath := fs.String("properties", "", "Optional: property list YAML")
	propertyID := fs.String("property", "", "Optional: property id to seed buy assumptions from")
	_ = fs.Parse(args)

	if *scenarioPath == "" {
		return fmt.Errorf("--scenario is required")
	}
	if *propertyID != "" && *propsPath == "" {
		return fmt.Errorf("--property requires --properties")
	}

	cfg, err := config.LoadUnchecked(*cfgPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	sc, err := deal.LoadScenario(*scenarioPath)
	if err != nil {
		return err
	}
	if *propertyID != "" {
		if err := seedScenario(sc, *propsPath, *propertyID); err != nil {
			return err
		}
	}
	res, err := sc.Run(deal.New(cfg.Engine))
	if err != nil {
		return err
	}

	title := sc.Name
	if title == "" {
		title = filepath.Base(*scenarioPath)
	}
	fmt.Printf("%s: %s / %s\n", title, res.Buy.Label(), res.Sell.Label())
	if !res.Compatible {
		fmt.Printf("%s cannot be paired with %s\n", res.Buy.Label(), res.Sell.Label())
		return nil
	}
	for _, li := range res.Items {
		fmt.Printf("  %-36s %18s\n", li.Label, li.Display())
	}

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			return err
		}
		if err := deal.WriteBreakdownCSVFile(*outPath, res); err != nil {
			return err
		}
		fmt.Printf("Wrote %d rows to %s\n", len(res.Items), *outPath)
	}
	return nil
}

func seedScenario(sc *deal.Scenario, propsPath, id string) error {
	repo, err := property.NewMemoryRepositoryFromFile(propsPath)
	if err != nil {
		return err
	}
	p, err := repo.Get(context.Background(), id)
	if err != nil {
		return err
	}
	buy, err := model.ParseBuyStrategy(sc.Buy)
	if err != nil {
		return err
	}
	sc.BuyAssumptions.Strategy = buy
	filled := forms.SeedFromProperty(&sc.BuyAssumptions, p)
	fmt.Printf("Seeded %s from %s: %s\n", strings.Join(filled, ", "), p.Address, p.ID)
	return nil
}

func cmdMatrix() {
	header := []string{fmt.Sprintf("%-24s", "buy \\ sell")}
	for _, s := range model.SellStrategies {
		header = append(header, fmt.Sprintf("%-20s", s.Label()))
	}
	fmt.Println(strings.Join(header, ""))
	for _, row := range strategy.Matrix() {
		cells := []string{fmt.Sprintf("%-24s", row.Label)}
		for _, s := range model.SellStrategies {
			mark := "-"
			if row.Enabled[s] {
				mark = "x"
			}
			cells = append(cells, fmt.Sprintf("%-20s", mark))
		}
		fmt.Println(strings.Join(cells, ""))
	}
}

func cmdAmortize(args []string) error {
	fs := flag.NewFlagSet("amortize", flag.ExitOnError)
	principal := fs.Float64("principal", 0, "Financed principal (loan amount less down payment)")
	rate := fs.Float64("rate", 0, "Annual interest rate, percent")
	years := fs.Float64("years", 30, "Amortization term in years")
	balloon := fs.Float64("balloon", 0, "Optional: balloon term in years")
	months := fs.Int("months", 12, "Months to project")
	outPath := fs.String("out", "", "Optional: write the schedule as CSV")
	_ = fs.Parse(args)

	ln := deal.Amortize(*principal, *rate, *years, *balloon, *months)
	fmt.Printf("Monthly payment:   %s\n", model.FormatUSD(ln.MonthlyPayment))
	fmt.Printf("Balance after %d:  %s\n", ln.HoldingMonths, model.FormatUSD(ln.BalanceAtSale))
	if ln.BalloonMonths > 0 {
		fmt.Printf("Balloon at %d:     %s\n", ln.BalloonMonths, model.FormatUSD(ln.BalloonBalance))
	}

	if *outPath == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		return err
	}
	f, err := os.Create(*outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := deal.WriteScheduleCSV(f, ln); err != nil {
		return err
	}
	fmt.Printf("Wrote %d months to %s\n", len(ln.Trajectory), *outPath)
	return nil
}

func cmdProperties(args []string) error {
	fs := flag.NewFlagSet("properties", flag.ExitOnError)
	file := fs.String("file", "examples/properties.yaml", "Property list YAML")
	mergePath := fs.String("merge", "", "Optional: property list to merge in (its entries win)")
	outPath := fs.String("out", "", "Output path for the merged list (default: --file)")
	_ = fs.Parse(args)

	base, err := property.LoadSeedFile(*file)
	if err != nil {
		return err
	}
	props := property.MergeSeeds(base.Properties)

	if *mergePath != "" {
		extra, err := property.LoadSeedFile(*mergePath)
		if err != nil {
			return err
		}
		props = property.MergeSeeds(base.Properties, extra.Properties)
		dst := *outPath
		if dst == "" {
			dst = *file
		}
		seed := &property.SeedFile{UpdatedAt: time.Now().UTC().Format("2006-01-02"), Properties: props}
		if err := property.SaveSeedFile(seed, dst); err != nil {
			return err
		}
		fmt.Printf("Wrote %d properties to %s\n", len(props), dst)
	}

	fmt.Printf("%-12s %-28s %-14s %14s %14s %8s\n", "id", "address", "city", "value", "last sale", "sqft")
	for _, p := range props {
		fmt.Printf("%-12s %-28s %-14s %14s %14s %8.0f\n",
			p.ID, p.Address, p.City, model.FormatUSD(p.Value()), model.FormatUSD(p.LatestSalePrice), p.SquareFoot)
	}
	return nil
}
