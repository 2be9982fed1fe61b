package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// RoleList is an ordered list of role identifiers, stored in the database as
// a comma-delimited string.
type RoleList []string

// ParseRoleList parses a delimited role string. An empty string means no
// roles. A string containing an empty component (leading, trailing or double
// comma) is malformed: it would otherwise be read back as a bogus role.
func ParseRoleList(s string) (RoleList, error) {
	if s == "" {
		return nil, nil
	}

	roles := strings.Split(s, ",")
	for _, role := range roles {
		if role == "" {
			return nil, fmt.Errorf("empty role in role string %q", s)
		}
	}

	return roles, nil
}

func (r RoleList) String() string {
	return strings.Join(r, ",")
}

func (r RoleList) Value() (driver.Value, error) {
	return r.String(), nil
}

func (r *RoleList) Scan(value any) error {
	if value == nil {
		*r = nil
		return nil
	}

	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("scanning role list: unexpected type %T", value)
	}

	roles, err := ParseRoleList(raw)
	if err != nil {
		return fmt.Errorf("scanning role list: %w", err)
	}
	*r = roles
	return nil
}
