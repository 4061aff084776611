// Package pipeline orchestrates the transcript-to-summary flow: fetch,
// chunked summarization, segmentation, key-point extraction, with per-result
// memoization in front of every expensive computation.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/video-nlp/backend/internal/cache"
	"github.com/video-nlp/backend/internal/keypoints"
	"github.com/video-nlp/backend/internal/segmenter"
	"github.com/video-nlp/backend/internal/summarize"
	"github.com/video-nlp/backend/internal/transcript"
)

// Segment summaries use fixed, tighter bounds than whole-video summaries.
const (
	segmentMinLength = 30
	segmentMaxLength = 100

	keyPointsMinLength = 100
	keyPointsMaxLength = 200
)

// SummaryResult is a whole-video summary with its source transcript.
type SummaryResult struct {
	Summary    string  `json:"summary"`
	Transcript string  `json:"transcript"`
	CreatedAt  float64 `json:"timestamp"`
}

// TimestampsResult is the segment list for a video.
type TimestampsResult struct {
	Segments  []segmenter.Segment `json:"timestamps"`
	CreatedAt float64             `json:"timestamp"`
}

// SegmentSummaryResult is the summary of one topical segment.
type SegmentSummaryResult struct {
	Summary       string  `json:"summary"`
	Time          float64 `json:"timestamp"`
	FormattedTime string  `json:"formatted_time"`
	Title         string  `json:"title"`
}

// KeyPointsResult is the bullet-point sentence list for a video.
type KeyPointsResult struct {
	Points    []string `json:"keyPoints"`
	CreatedAt float64  `json:"timestamp"`
}

// KeyTermsResult is the enriched key-term list for a video.
type KeyTermsResult struct {
	Terms     []string `json:"keyPoints"`
	CreatedAt float64  `json:"timestamp"`
}

// Pipeline wires the fetcher, summarization engine, segmenter and caches
// behind the operations the API exposes.
type Pipeline struct {
	fetcher  transcript.Fetcher
	engine   *summarize.Engine
	enricher keypoints.Enricher

	summaries  *cache.Cache[SummaryResult]
	timestamps *cache.Cache[TimestampsResult]
	segments   *cache.Cache[SegmentSummaryResult]
	terms      *cache.Cache[KeyTermsResult]
}

// New creates a pipeline with caches bounded to cacheSize entries each.
// enricher may be nil to disable key-term enrichment.
func New(fetcher transcript.Fetcher, engine *summarize.Engine, enricher keypoints.Enricher, cacheSize int) (*Pipeline, error) {
	summaries, err := cache.New[SummaryResult](cacheSize)
	if err != nil {
		return nil, err
	}
	timestamps, err := cache.New[TimestampsResult](cacheSize)
	if err != nil {
		return nil, err
	}
	segments, err := cache.New[SegmentSummaryResult](cacheSize)
	if err != nil {
		return nil, err
	}
	terms, err := cache.New[KeyTermsResult](cacheSize)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		fetcher:    fetcher,
		engine:     engine,
		enricher:   enricher,
		summaries:  summaries,
		timestamps: timestamps,
		segments:   segments,
		terms:      terms,
	}, nil
}

// Summarize produces (and caches) an abstractive summary of the whole video.
func (p *Pipeline) Summarize(ctx context.Context, videoID string, minLength, maxLength int) (SummaryResult, error) {
	// Numeric fields make the key injective: they cannot contain the separator.
	key := fmt.Sprintf("summary|%s|%d|%d", videoID, minLength, maxLength)

	return p.summaries.GetOrCompute(key, func() (SummaryResult, error) {
		t, err := p.fetcher.Fetch(ctx, videoID)
		if err != nil {
			return SummaryResult{}, pipelineError(err)
		}

		summary, err := p.engine.Summarize(ctx, t.Text(), minLength, maxLength)
		if err != nil {
			return SummaryResult{}, pipelineError(err)
		}

		return SummaryResult{
			Summary:    summary,
			Transcript: t.Text(),
			CreatedAt:  unixNow(),
		}, nil
	})
}

// Timestamps produces (and caches) the topical segment list for a video.
func (p *Pipeline) Timestamps(ctx context.Context, videoID string) (TimestampsResult, error) {
	key := "timestamps|" + videoID

	return p.timestamps.GetOrCompute(key, func() (TimestampsResult, error) {
		t, err := p.fetcher.Fetch(ctx, videoID)
		if err != nil {
			return TimestampsResult{}, pipelineError(err)
		}

		return TimestampsResult{
			Segments:  segmenter.Segments(t),
			CreatedAt: unixNow(),
		}, nil
	})
}

// SegmentSummary summarizes one segment, resolving the segment list through
// the same cache the timestamps operation populates.
func (p *Pipeline) SegmentSummary(ctx context.Context, videoID string, segmentID int) (SegmentSummaryResult, error) {
	ts, err := p.Timestamps(ctx, videoID)
	if err != nil {
		return SegmentSummaryResult{}, err
	}

	if segmentID < 0 || segmentID >= len(ts.Segments) {
		return SegmentSummaryResult{}, inputError("invalid segment ID %d (video has %d segments)", segmentID, len(ts.Segments))
	}

	key := fmt.Sprintf("segment|%s|%d", videoID, segmentID)

	return p.segments.GetOrCompute(key, func() (SegmentSummaryResult, error) {
		seg := ts.Segments[segmentID]

		if strings.TrimSpace(seg.Text) == "" {
			return SegmentSummaryResult{}, notFoundError("no transcript found for segment %d", segmentID)
		}

		summary, err := p.engine.Summarize(ctx, seg.Text, segmentMinLength, segmentMaxLength)
		if err != nil {
			return SegmentSummaryResult{}, pipelineError(err)
		}

		return SegmentSummaryResult{
			Summary:       summary,
			Time:          seg.Time,
			FormattedTime: seg.FormattedTime,
			Title:         seg.Title,
		}, nil
	})
}

// KeyPoints summarizes the video and splits the summary into bullet-point
// sentences. The underlying summary is cached; the point list is cheap to
// rederive, so it is not.
func (p *Pipeline) KeyPoints(ctx context.Context, videoID string) (KeyPointsResult, error) {
	result, err := p.Summarize(ctx, videoID, keyPointsMinLength, keyPointsMaxLength)
	if err != nil {
		return KeyPointsResult{}, err
	}
	if result.Summary == "" {
		return KeyPointsResult{}, inputError("could not generate summary from transcript")
	}
	return KeyPointsResult{
		Points:    keypoints.FromSummary(result.Summary),
		CreatedAt: unixNow(),
	}, nil
}

// KeyTerms extracts (and caches) the top numTerms key terms straight from the
// transcript, enriched with encyclopedia extracts when an enricher is set.
func (p *Pipeline) KeyTerms(ctx context.Context, videoID string, numTerms int) (KeyTermsResult, error) {
	key := fmt.Sprintf("keypoints_wiki|%s|%d", videoID, numTerms)

	return p.terms.GetOrCompute(key, func() (KeyTermsResult, error) {
		t, err := p.fetcher.Fetch(ctx, videoID)
		if err != nil {
			return KeyTermsResult{}, pipelineError(err)
		}

		terms := keypoints.Terms(t.Text(), numTerms)
		return KeyTermsResult{
			Terms:     keypoints.Enrich(ctx, p.enricher, terms),
			CreatedAt: unixNow(),
		}, nil
	})
}

func unixNow() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}
