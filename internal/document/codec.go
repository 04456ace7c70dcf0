package document

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/wwwyo/goto-cd/internal/config"
)

// Codec converts documents to and from their on-disk representation.
type Codec interface {
	// Extension is the file extension without the leading dot.
	Extension() string
	Decode(data []byte) (Document, error)
	Encode(doc Document) ([]byte, error)
}

// CodecFor returns the codec for a document format.
func CodecFor(format config.Format) (Codec, error) {
	switch format {
	case config.FormatTOML, "":
		return TOMLCodec{}, nil
	case config.FormatYAML:
		return YAMLCodec{}, nil
	default:
		return nil, fmt.Errorf("unsupported document format %q", format)
	}
}

// TOMLCodec stores documents as TOML.
type TOMLCodec struct{}

func (TOMLCodec) Extension() string { return "toml" }

func (TOMLCodec) Decode(data []byte) (Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Document{}, nil
	}
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return fromRaw(raw), nil
}

func (TOMLCodec) Encode(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(map[string]any(doc)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// YAMLCodec stores documents as YAML.
type YAMLCodec struct{}

func (YAMLCodec) Extension() string { return "yaml" }

func (YAMLCodec) Decode(data []byte) (Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Document{}, nil
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return fromRaw(raw), nil
}

func (YAMLCodec) Encode(doc Document) ([]byte, error) {
	if len(doc) == 0 {
		return []byte("{}\n"), nil
	}
	return yaml.Marshal(map[string]any(doc))
}

func fromRaw(raw map[string]any) Document {
	if raw == nil {
		return Document{}
	}
	return Document(normalize(raw).(map[string]any))
}
