// Package rules evaluates the stream filters a transcoding host runs before
// deciding what to do with a file.
//
// A Rule is a tagged variant: Kind selects the family and only that family's
// config is read. Three families exist:
//   - KindCompliance: every configured language present in the file must
//     have at least one stream with the target codec and channel count
//   - KindOrder: video, audio and subtitle streams must form contiguous
//     blocks in that order, and audio must follow the preferred language
//     order with higher channel counts first
//   - KindCodecs: no video stream may use a denylisted codec
//
// Evaluate is pure: the same Input always yields the same Decision and the
// same log text. Missing probe data passes compliance and codec checks but
// fails the order check, since order cannot be verified without streams.
package rules
