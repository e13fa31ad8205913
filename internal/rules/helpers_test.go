package rules

import "streamgate/internal/media/ffprobe"

func probeOf(list ...ffprobe.Stream) *ffprobe.Result {
	indexed := make([]ffprobe.Stream, len(list))
	for i, stream := range list {
		stream.Index = i
		indexed[i] = stream
	}
	return &ffprobe.Result{Streams: indexed}
}

func video(codec string) ffprobe.Stream {
	return ffprobe.Stream{CodecType: "video", CodecName: codec}
}

func audio(codec string, channels int, lang string) ffprobe.Stream {
	stream := ffprobe.Stream{CodecType: "audio", CodecName: codec, Channels: channels}
	if lang != "" {
		stream.Tags = map[string]string{"language": lang}
	}
	return stream
}

func subtitle(lang string) ffprobe.Stream {
	return ffprobe.Stream{CodecType: "subtitle", CodecName: "subrip", Tags: map[string]string{"language": lang}}
}
