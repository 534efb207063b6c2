// seed generates a SQL script seeding the branches table from a legacy
// Branches.xml export (the old desktop POS writes ISO-8859-1).
//
// Usage: go run ./cmd/seed [path/Branches.xml]
// Defaults to Branches.xml in the current directory.
// Writes: internal/infrastructure/postgres/migrations/002_seed_branches.sql
package main

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type branchFile struct {
	Branches []branchRow `xml:"branch"`
}

type branchRow struct {
	Code    string `xml:"code,attr"`
	Name    string `xml:"name,attr"`
	Address string `xml:"address"`
	Phone   string `xml:"phone"`
}

func main() {
	xmlPath := "Branches.xml"
	if len(os.Args) > 1 {
		xmlPath = os.Args[1]
	}
	f, err := os.Open(xmlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open XML: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var bf branchFile
	dec := xml.NewDecoder(f)
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		if strings.EqualFold(charset, "ISO-8859-1") || strings.EqualFold(charset, "ISO8859-1") {
			return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
		}
		return input, nil
	}
	if err := dec.Decode(&bf); err != nil {
		fmt.Fprintf(os.Stderr, "decode XML: %v\n", err)
		os.Exit(1)
	}

	rows := bf.Branches
	sort.Slice(rows, func(i, j int) bool { return rows[i].Code < rows[j].Code })

	var sb strings.Builder
	sb.WriteString("-- Generated by cmd/seed from " + filepath.Base(xmlPath) + ". Do not edit.\n")
	sb.WriteString("INSERT INTO branches (id, code, name, address, phone, created_by, created_at, updated_at) VALUES\n")
	for i, r := range rows {
		if r.Code == "" || r.Name == "" {
			fmt.Fprintf(os.Stderr, "skipping row %d: missing code or name\n", i)
			continue
		}
		sb.WriteString(fmt.Sprintf("  (gen_random_uuid(), %s, %s, %s, %s, 'seed', now(), now())",
			quote(r.Code), quote(r.Name), quote(r.Address), quote(r.Phone)))
		if i < len(rows)-1 {
			sb.WriteString(",\n")
		} else {
			sb.WriteString("\n")
		}
	}
	sb.WriteString("ON CONFLICT DO NOTHING;\n")

	outPath := filepath.Join("internal", "infrastructure", "postgres", "migrations", "002_seed_branches.sql")
	if err := os.WriteFile(outPath, []byte(sb.String()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", outPath, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (%d branches)\n", outPath, len(rows))
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(strings.TrimSpace(s), "'", "''") + "'"
}
