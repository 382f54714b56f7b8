package printer

import (
	"fmt"
	"strings"

	"github.com/joshuapare/d2ikit/item"
	"github.com/joshuapare/d2ikit/item/props"
)

func (p *Printer) printRecordText(rec *item.Record) error {
	ind := strings.Repeat(" ", p.opts.IndentSize)
	w := p.writer

	if rec.Ear != nil {
		fmt.Fprintf(w, "[ear] %s (class %d, level %d)\n", rec.Ear.Name, rec.Ear.Class, rec.Ear.Level)
	} else {
		fmt.Fprintf(w, "[%s]", rec.TypeCode)
		if rec.Extended() {
			fmt.Fprintf(w, " %s ilvl %d guid %08X", rec.Quality, rec.Level, rec.GUID)
		} else {
			fmt.Fprint(w, " simple")
		}
		fmt.Fprintln(w)
	}

	if p.opts.ShowHeader {
		fmt.Fprintf(w, "%sVersion: %d\n", ind, rec.Version)
		fmt.Fprintf(w, "%sPlacement: location %d, equipped %d, column %d, row %d, storage %d\n", ind,
			rec.Placement.Location, rec.Placement.Equipped, rec.Placement.Column, rec.Placement.Row, rec.Placement.Storage)
		if flags := flagNames(rec.Flags); len(flags) > 0 {
			fmt.Fprintf(w, "%sFlags: %s\n", ind, strings.Join(flags, ", "))
		}
		if rec.PersonalizedName != "" {
			fmt.Fprintf(w, "%sPersonalized: %s\n", ind, rec.PersonalizedName)
		}
		if rec.Flags.Runeword && rec.Extended() {
			fmt.Fprintf(w, "%sRuneword: %d\n", ind, rec.RunewordCode)
		}
		if rec.HasDefense {
			fmt.Fprintf(w, "%sDefense: %d\n", ind, rec.Defense)
		}
		if rec.HasDurability {
			fmt.Fprintf(w, "%sDurability: %d/%d\n", ind, rec.Durability, rec.MaxDurability)
		}
		if rec.HasQuantity {
			fmt.Fprintf(w, "%sQuantity: %d\n", ind, rec.Quantity)
		}
		if rec.HasSocketCount {
			fmt.Fprintf(w, "%sSockets: %d/%d\n", ind, rec.SocketsFilled, rec.SocketCount)
		}
	}

	if rec.HasProperties() {
		fmt.Fprintf(w, "%sProperties (%d) at bit %d:\n", ind, len(rec.Properties), rec.PropertiesStart)
		p.printPropertiesText(rec.Properties, 2)
		if len(rec.RunewordProperties) > 0 {
			fmt.Fprintf(w, "%sRuneword properties (%d):\n", ind, len(rec.RunewordProperties))
			p.printPropertiesText(rec.RunewordProperties, 2)
		}
	}

	if p.opts.ShowBits {
		fmt.Fprintf(w, "%sBits (%d): %s\n", ind, rec.Bits.Len(), rec.Bits.BitString())
	}
	return nil
}

func (p *Printer) printPropertiesText(ps []props.Property, depth int) {
	ind := strings.Repeat(" ", depth*p.opts.IndentSize)
	for _, pr := range ps {
		fmt.Fprintf(p.writer, "%s%3d %-28s %d", ind, pr.ID, p.name(pr.ID), pr.Value)
		if p.hasParam(pr) {
			fmt.Fprintf(p.writer, " (param %d)", pr.Param)
		}
		if p.opts.ShowOffsets {
			fmt.Fprintf(p.writer, " @%d", pr.Offset)
		}
		fmt.Fprintln(p.writer)
	}
}

func (p *Printer) printDefinitionsText(defs []props.Definition) error {
	fmt.Fprintf(p.writer, "%-4s %-28s %5s %4s %5s %s\n", "ID", "NAME", "ADD", "BITS", "PARAM", "REPEAT")
	for _, d := range defs {
		repeat := ""
		if d.Repeatable {
			repeat = "yes"
		}
		fmt.Fprintf(p.writer, "%-4d %-28s %5d %4d %5d %s\n", d.ID, d.Name, d.AddBias, d.ValueBits, d.ParamBits, repeat)
	}
	return nil
}

func flagNames(f item.Flags) []string {
	var out []string
	add := func(set bool, name string) {
		if set {
			out = append(out, name)
		}
	}
	add(f.Quest, "quest")
	add(f.Identified, "identified")
	add(f.Socketed, "socketed")
	add(f.Ear, "ear")
	add(f.Starter, "starter")
	add(f.Simple, "simple")
	add(f.Ethereal, "ethereal")
	add(f.Personalized, "personalized")
	add(f.Runeword, "runeword")
	return out
}
