package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"awslab/resources"
)

const (
	keyAMI         = "ami"
	keyType        = "type"
	keySSHUser     = "ssh_user"
	keyDescription = "description"
	keyRules       = "rules"
	keyCommands    = "commands"
	keyID          = "id"
	keyPublicDNS   = "public_dns"
	keyFirstRun    = "first_run"
)

// Rule is written as a [protocol, from_port, to_port, cidr] tuple.
type Rule struct {
	Protocol string
	FromPort int64
	ToPort   int64
	CIDR     string
}

func (r *Rule) UnmarshalJSON(b []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(b, &tuple); err != nil {
		return fmt.Errorf("rule must be a [protocol, from_port, to_port, cidr] list: %s", err)
	}
	if len(tuple) != 4 {
		return fmt.Errorf("rule %s must have 4 elements, has %d", string(b), len(tuple))
	}

	if err := json.Unmarshal(tuple[0], &r.Protocol); err != nil {
		return fmt.Errorf("rule protocol: %s", err)
	}

	var err error
	if r.FromPort, err = parsePort(tuple[1]); err != nil {
		return fmt.Errorf("rule from_port: %s", err)
	}
	if r.ToPort, err = parsePort(tuple[2]); err != nil {
		return fmt.Errorf("rule to_port: %s", err)
	}

	if err := json.Unmarshal(tuple[3], &r.CIDR); err != nil {
		return fmt.Errorf("rule cidr: %s", err)
	}
	return nil
}

func (r Rule) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{r.Protocol, r.FromPort, r.ToPort, r.CIDR})
}

func (r Rule) Resource() resources.Rule {
	return resources.Rule{Protocol: r.Protocol, FromPort: r.FromPort, ToPort: r.ToPort, CIDR: r.CIDR}
}

// ports may be written as numbers or numeric strings
func parsePort(raw json.RawMessage) (int64, error) {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.Int64()
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("invalid port %s", string(raw))
	}
	return strconv.ParseInt(s, 10, 64)
}

// Instance is a per-instance config file. It is also the durable record of
// the instance id and the first-run marker, so every key not managed here is
// carried through load and save untouched.
type Instance struct {
	AMI         string
	Type        string
	SSHUser     string
	Description string
	Rules       []Rule
	Commands    []string

	ID        string
	PublicDNS string
	FirstRun  *bool

	raw map[string]json.RawMessage
}

type instanceFields struct {
	AMI         string   `json:"ami"`
	Type        string   `json:"type"`
	SSHUser     string   `json:"ssh_user"`
	Description string   `json:"description"`
	Rules       []Rule   `json:"rules"`
	Commands    []string `json:"commands"`
	ID          string   `json:"id"`
	PublicDNS   string   `json:"public_dns"`
	FirstRun    *bool    `json:"first_run"`
}

func NewInstanceFromReader(r io.Reader) (*Instance, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	i := &Instance{}
	if err := json.Unmarshal(b, i); err != nil {
		return nil, err
	}
	return i, nil
}

func LoadInstance(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return NewInstanceFromReader(f)
}

func (i *Instance) UnmarshalJSON(b []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	fields := instanceFields{}
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}

	*i = Instance{
		AMI:         fields.AMI,
		Type:        fields.Type,
		SSHUser:     fields.SSHUser,
		Description: fields.Description,
		Rules:       fields.Rules,
		Commands:    fields.Commands,
		ID:          fields.ID,
		PublicDNS:   fields.PublicDNS,
		FirstRun:    fields.FirstRun,
		raw:         raw,
	}
	return nil
}

func (i Instance) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(i.raw)+3)
	for k, v := range i.raw {
		out[k] = v
	}

	// static keys are never mutated, so a loaded value is written back verbatim
	static := []struct {
		key   string
		set   bool
		value interface{}
	}{
		{keyAMI, i.AMI != "", i.AMI},
		{keyType, i.Type != "", i.Type},
		{keySSHUser, i.SSHUser != "", i.SSHUser},
		{keyDescription, i.Description != "", i.Description},
		{keyRules, i.Rules != nil, i.Rules},
		{keyCommands, i.Commands != nil, i.Commands},
	}
	for _, s := range static {
		if _, loaded := i.raw[s.key]; loaded || !s.set {
			continue
		}
		if err := setKey(out, s.key, s.value); err != nil {
			return nil, err
		}
	}

	managed := []struct {
		key   string
		set   bool
		value interface{}
	}{
		{keyID, i.ID != "", i.ID},
		{keyPublicDNS, i.PublicDNS != "", i.PublicDNS},
		{keyFirstRun, i.FirstRun != nil, i.FirstRun},
	}
	for _, m := range managed {
		if !m.set {
			delete(out, m.key)
			continue
		}
		if err := setKey(out, m.key, m.value); err != nil {
			return nil, err
		}
	}

	return json.Marshal(out)
}

func setKey(out map[string]json.RawMessage, key string, value interface{}) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshaling %s: %s", key, err)
	}
	out[key] = b
	return nil
}

// HasKey reports whether key was present in the loaded file.
func (i *Instance) HasKey(key string) bool {
	_, ok := i.raw[key]
	return ok
}

func (i *Instance) IsFirstRun() bool {
	return i.FirstRun == nil || *i.FirstRun
}

func (i *Instance) ResourceRules() []resources.Rule {
	rules := make([]resources.Rule, 0, len(i.Rules))
	for _, r := range i.Rules {
		rules = append(rules, r.Resource())
	}
	return rules
}

// Launched records the instance that is now running.
func (i *Instance) Launched(id, publicDNS string) {
	i.ID = id
	i.PublicDNS = publicDNS
}

// ClaimFirstRun reports whether commands are still pending and, if so, marks
// them as run so they are never executed twice.
func (i *Instance) ClaimFirstRun() bool {
	if !i.IsFirstRun() {
		return false
	}
	claimed := false
	i.FirstRun = &claimed
	return true
}

func (i *Instance) Stopped() {
	i.PublicDNS = ""
}

func (i *Instance) Terminated() {
	reset := true
	i.FirstRun = &reset
	i.ID = ""
	i.PublicDNS = ""
}

type Store interface {
	Save(instance *Instance) error
}

// FileStore writes the instance config back to Path.
type FileStore struct {
	Path string
}

func (s FileStore) Save(instance *Instance) error {
	if instance == nil {
		return errors.New("instance config is nil")
	}

	b, err := json.Marshal(instance)
	if err != nil {
		return fmt.Errorf("marshaling instance config: %s", err)
	}

	indented := &bytes.Buffer{}
	if err := json.Indent(indented, b, "", "  "); err != nil {
		return fmt.Errorf("indenting instance config: %s", err)
	}
	indented.WriteByte('\n')

	mode := os.FileMode(0644)
	if info, err := os.Stat(s.Path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.Path), "."+filepath.Base(s.Path)+".*")
	if err != nil {
		return fmt.Errorf("creating temporary config file: %s", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(indented.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("writing config file: %s", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing config file: %s", err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("setting config file mode: %s", err)
	}

	if err := os.Rename(tmpName, s.Path); err != nil {
		return fmt.Errorf("replacing config file: %s", err)
	}
	return nil
}
