// Package export renders assembled reports into downloadable files.
// Report data is first flattened into a Document, a format-neutral set
// of labelled tables, and then written as CSV, XLSX or PDF.
package export

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bakorimukhtar/KTIRS-Service-Wide-Revenue-Collection-System/internal/core/domain"
)

// View selects which figures of an annual report to include in a file.
type View string

const (
	ViewCollected View = "collected"
	ViewBudget    View = "budget"
	ViewBoth      View = "both"
)

// Table is one labelled grid of a document.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// Document is a format-neutral report file: letterhead lines, a title,
// the generation time and one or more tables.
type Document struct {
	Letterhead  []string
	Title       string
	GeneratedAt time.Time
	Tables      []Table
}

var monthHeaders = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

func annualHeader() []string {
	header := make([]string, 0, 15)
	header = append(header, "Location", "Revenue Stream")
	header = append(header, monthHeaders...)
	return append(header, "Total")
}

func annualRow(location, stream string, buckets [12]decimal.Decimal, total decimal.Decimal) []string {
	row := make([]string, 0, 15)
	row = append(row, location, stream)
	for _, v := range buckets {
		row = append(row, v.StringFixed(2))
	}
	return append(row, total.StringFixed(2))
}

// BuildAnnualDocument flattens an annual report into tables according to
// the requested view.
func BuildAnnualDocument(report *domain.AnnualReport, view View, letterhead []string) Document {
	doc := Document{
		Letterhead:  letterhead,
		Title:       "Annual Revenue Report " + yearTitle(report.Year),
		GeneratedAt: time.Now(),
	}

	if view == ViewCollected || view == ViewBoth {
		table := Table{Name: "Collected", Header: annualHeader()}
		for _, row := range report.Rows {
			table.Rows = append(table.Rows, annualRow(row.LocationName, row.StreamName, row.Collected, row.CollectedTotal))
		}
		doc.Tables = append(doc.Tables, table)
	}

	if view == ViewBudget || view == ViewBoth {
		table := Table{Name: "Budget", Header: annualHeader()}
		for _, row := range report.Rows {
			table.Rows = append(table.Rows, annualRow(row.LocationName, row.StreamName, row.Budget, row.BudgetTotal))
		}
		doc.Tables = append(doc.Tables, table)
	}

	return doc
}

// BuildMonthlyDocument flattens a single-location monthly report into a
// per-stream table and a per-code table.
func BuildMonthlyDocument(report *domain.MonthlyLocationReport, letterhead []string) Document {
	doc := Document{
		Letterhead:  letterhead,
		Title:       report.Location.Name + " Monthly Report " + report.Period.Format("2006-01"),
		GeneratedAt: time.Now(),
	}

	streams := Table{
		Name:   "Streams",
		Header: []string{"Revenue Stream", "Collected", "Monthly Target", "Annual Budget", "Codes"},
	}
	for _, row := range report.Rows {
		streams.Rows = append(streams.Rows, []string{
			row.StreamName,
			row.Collected.StringFixed(2),
			row.MonthlyTarget.StringFixed(2),
			row.AnnualBudget.StringFixed(2),
			strconv.Itoa(row.CodesCount),
		})
	}
	doc.Tables = append(doc.Tables, streams)

	codes := Table{
		Name:   "Codes",
		Header: []string{"Revenue Stream", "Code", "Description", "Collected"},
	}
	for _, row := range report.Codes {
		codes.Rows = append(codes.Rows, []string{row.StreamName, row.Code, row.Name, row.Collected.StringFixed(2)})
	}
	doc.Tables = append(doc.Tables, codes)

	return doc
}

func yearTitle(year int) string {
	return strconv.Itoa(year)
}
