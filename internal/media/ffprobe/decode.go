package ffprobe

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

type fields map[string]json.RawMessage

// decodeStreams returns nil when streams is absent or not an array. A record
// that is not an object keeps its position as a zero Stream.
func decodeStreams(raw json.RawMessage) []Stream {
	var records []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &records) != nil || records == nil {
		return nil
	}
	list := make([]Stream, 0, len(records))
	for _, record := range records {
		f := objectFields(record)
		list = append(list, Stream{
			Index:         f.number("index"),
			CodecName:     f.text("codec_name"),
			CodecLong:     f.text("codec_long_name"),
			CodecType:     f.text("codec_type"),
			CodecTag:      f.text("codec_tag_string"),
			Profile:       f.text("profile"),
			Duration:      f.text("duration"),
			BitRate:       f.text("bit_rate"),
			Width:         f.number("width"),
			Height:        f.number("height"),
			SampleRate:    f.text("sample_rate"),
			Channels:      f.number("channels"),
			ChannelLayout: f.text("channel_layout"),
			Tags:          f.tags("tags"),
			Disposition:   f.flags("disposition"),
		})
	}
	return list
}

func decodeFormat(raw json.RawMessage) Format {
	f := objectFields(raw)
	return Format{
		Filename:   f.text("filename"),
		NBStreams:  f.number("nb_streams"),
		Duration:   f.text("duration"),
		Size:       f.text("size"),
		BitRate:    f.text("bit_rate"),
		FormatName: f.text("format_name"),
	}
}

func objectFields(raw json.RawMessage) fields {
	var f fields
	if len(raw) == 0 || json.Unmarshal(raw, &f) != nil {
		return nil
	}
	return f
}

// text accepts JSON strings and numbers; numbers keep their literal text.
func (f fields) text(key string) string {
	return scalarText(f[key])
}

// number accepts integral numbers and numeric strings.
func (f fields) number(key string) int {
	text := scalarText(f[key])
	if text == "" {
		return 0
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value != math.Trunc(value) {
		return 0
	}
	if value > math.MaxInt32 || value < math.MinInt32 {
		return 0
	}
	return int(value)
}

func (f fields) tags(key string) map[string]string {
	nested := objectFields(f[key])
	if len(nested) == 0 {
		return nil
	}
	tags := make(map[string]string, len(nested))
	for name := range nested {
		if value := nested.text(name); value != "" {
			tags[name] = value
		}
	}
	return tags
}

func (f fields) flags(key string) map[string]int {
	nested := objectFields(f[key])
	if len(nested) == 0 {
		return nil
	}
	flags := make(map[string]int, len(nested))
	for name := range nested {
		flags[name] = nested.number(name)
	}
	return flags
}

func scalarText(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return ""
	}
	switch trimmed[0] {
	case '"':
		var text string
		if json.Unmarshal(trimmed, &text) != nil {
			return ""
		}
		return text
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var number json.Number
		if json.Unmarshal(trimmed, &number) != nil {
			return ""
		}
		return number.String()
	default:
		return ""
	}
}
