package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/d2ikit/item/props"
)

// parseID accepts a numeric property id or a property name from the loaded table.
func parseID(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty property id")
	}
	if n, err := strconv.ParseUint(s, 0, 16); err == nil {
		if n >= uint64(props.SentinelID) {
			return 0, fmt.Errorf("property id %d out of range", n)
		}
		return uint16(n), nil
	}
	for _, d := range tables.Props.Definitions() {
		if strings.EqualFold(d.Name, s) {
			return d.ID, nil
		}
	}
	return 0, fmt.Errorf("unknown property %q", s)
}

// parseAssignment parses id=value or id=value:param.
func parseAssignment(s string) (props.Property, error) {
	idStr, rest, ok := strings.Cut(s, "=")
	if !ok {
		return props.Property{}, fmt.Errorf("invalid property %q (want id=value[:param])", s)
	}
	id, err := parseID(idStr)
	if err != nil {
		return props.Property{}, err
	}

	valStr, paramStr, hasParam := strings.Cut(rest, ":")
	val, err := strconv.ParseInt(strings.TrimSpace(valStr), 0, 64)
	if err != nil {
		return props.Property{}, fmt.Errorf("invalid value in %q: %w", s, err)
	}
	p := props.Property{ID: id, Value: val}
	if hasParam {
		param, err := strconv.ParseUint(strings.TrimSpace(paramStr), 0, 32)
		if err != nil {
			return props.Property{}, fmt.Errorf("invalid param in %q: %w", s, err)
		}
		p.Param = uint32(param)
	}
	return p, nil
}

func parseAssignments(list []string) ([]props.Property, error) {
	out := make([]props.Property, 0, len(list))
	for _, s := range list {
		p, err := parseAssignment(s)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func parseIDs(list []string) ([]uint16, error) {
	out := make([]uint16, 0, len(list))
	for _, s := range list {
		id, err := parseID(s)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

// splitList splits a comma-separated flag value, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
