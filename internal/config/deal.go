package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"leasescore/internal/model"
)

// DealFile is the on-disk shape of a deal (YAML or JSON, chosen by extension).
type DealFile struct {
	Name string `yaml:"name" json:"name"`
	// Optional: load a base deal from another file and apply Deal on top of it.
	BaseFile string           `yaml:"base_file" json:"base_file"`
	Deal     model.DealInputs `yaml:"deal" json:"deal"`
}

// LoadDeal reads a deal file. When the file names no deal, the file name is used.
func LoadDeal(path string) (*DealFile, error) {
	f, err := readDealFile(path)
	if err != nil {
		return nil, err
	}
	if f.BaseFile != "" {
		base, err := readDealFile(resolveRelative(path, f.BaseFile))
		if err != nil {
			return nil, fmt.Errorf("base file for %s: %w", path, err)
		}
		f.Deal = MergeDeal(base.Deal, f.Deal)
	}
	if f.Name == "" {
		f.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return f, nil
}

// LoadDeals loads every path in order. A directory expands to its .yaml, .yml and .json files,
// sorted by name.
func LoadDeals(paths []string) ([]*DealFile, error) {
	var files []string
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, err
		}
		var found []string
		for _, e := range entries {
			if !e.IsDir() && isDealExt(e.Name()) {
				found = append(found, filepath.Join(p, e.Name()))
			}
		}
		sort.Strings(found)
		files = append(files, found...)
	}

	out := make([]*DealFile, 0, len(files))
	for _, f := range files {
		d, err := LoadDeal(f)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func readDealFile(path string) (*DealFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f DealFile
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(raw, &f)
	} else {
		err = yaml.Unmarshal(raw, &f)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &f, nil
}

// MergeDeal overlays non-zero fields from override onto base.
// Pointer fields override whenever they are set, so an explicit zero still wins.
func MergeDeal(base, override model.DealInputs) model.DealInputs {
	out := base
	if override.MSRP != 0 {
		out.MSRP = override.MSRP
	}
	if override.NegotiatedPrice != 0 {
		out.NegotiatedPrice = override.NegotiatedPrice
	}
	if override.MonthlyPayment != 0 {
		out.MonthlyPayment = override.MonthlyPayment
	}
	if override.DownPayment != 0 {
		out.DownPayment = override.DownPayment
	}
	if override.LeaseTermMonths != 0 {
		out.LeaseTermMonths = override.LeaseTermMonths
	}
	if override.SalesTaxPercent != 0 {
		out.SalesTaxPercent = override.SalesTaxPercent
	}
	if override.TradeInValue != 0 {
		out.TradeInValue = override.TradeInValue
	}
	if override.UpfrontTax != 0 {
		out.UpfrontTax = override.UpfrontTax
	}
	if override.RateMode != "" {
		out.RateMode = override.RateMode
	}
	if override.ResidualValue != nil {
		out.ResidualValue = model.Float(*override.ResidualValue)
	}
	if override.AcquisitionFee != nil {
		out.AcquisitionFee = model.Float(*override.AcquisitionFee)
	}
	if override.MoneyFactor != nil {
		out.MoneyFactor = model.Float(*override.MoneyFactor)
	}
	if override.APRPercent != nil {
		out.APRPercent = model.Float(*override.APRPercent)
	}
	return out
}

func isDealExt(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// resolveRelative prefers interpreting rel relative to the directory of from, but falls back
// to rel as given (relative to cwd) if that doesn't exist.
func resolveRelative(from, rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	cand := filepath.Join(filepath.Dir(from), rel)
	if _, err := os.Stat(cand); err == nil {
		return cand
	}
	return rel
}
