/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package manifest

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"dirpx.dev/enumx/internal/xlog"
)

// Load reads and validates the manifest at path. The format follows the
// extension: .yaml/.yml or .hcl.
func Load(ctx context.Context, path string) (*Manifest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := xlog.FromContext(ctx).With("path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read manifest")
	}

	var m *Manifest
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		m, err = DecodeYAML(bytes.NewReader(src))
	case ".hcl":
		m, err = ParseHCL(src, path)
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", ext)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	if err := m.Validate(); err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}

	log.Debug("manifest loaded", "enums", len(m.Enums))
	return m, nil
}

// DecodeYAML decodes a YAML manifest. Unknown fields are rejected.
func DecodeYAML(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return &m, nil
		}
		return nil, errors.Wrap(err, "decode yaml manifest")
	}
	return &m, nil
}

// ParseHCL decodes an HCL manifest; filename is used in diagnostics only.
func ParseHCL(src []byte, filename string) (*Manifest, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Wrap(diags, "parse hcl manifest")
	}

	var m Manifest
	if diags := gohcl.DecodeBody(file.Body, nil, &m); diags.HasErrors() {
		return nil, errors.Wrap(diags, "decode hcl manifest")
	}
	return &m, nil
}

// Encode writes m as YAML.
func Encode(w io.Writer, m *Manifest) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return errors.Wrap(err, "encode manifest")
	}
	return errors.Wrap(enc.Close(), "encode manifest")
}
