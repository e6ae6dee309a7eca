// Package chartimg はOHLC時系列からローソク足チャートのPNG画像を生成します。
package chartimg

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"chime_backend/internal/feature/tokens/domain/entity"
	"chime_backend/internal/feature/tokens/usecase"
)

const (
	chartWidth  = 1024
	chartHeight = 512
)

// Renderer はChartRendererインターフェースのgo-chart実装です。
type Renderer struct {
	width  int
	height int
}

// RendererがChartRendererを実装していることをコンパイル時に検証します。
var _ usecase.ChartRenderer = (*Renderer)(nil)

// NewRenderer はデフォルトの画像サイズでRendererの新しいインスタンスを生成します。
func NewRenderer() *Renderer {
	return &Renderer{width: chartWidth, height: chartHeight}
}

// Render は1コイン分のローソク足チャートをPNGに描画し、
// 標準base64でエンコードした画像を返します。
// タイムスタンプはエポックミリ秒をUTCの取引日としてそのまま扱い、タイムゾーン変換は行いません。
// points が空の場合は ErrNoChartData を返し、バッチ側でスキップできるようにします。
func (r *Renderer) Render(tokenID, displayName string, points []entity.OHLCPoint) (entity.RenderedChart, error) {
	if len(points) == 0 {
		return entity.RenderedChart{}, fmt.Errorf("%w: %s", usecase.ErrNoChartData, tokenID)
	}

	series := newCandleSeries(points)
	xmin, xmax, ymin, ymax := series.paddedBounds()

	title := fmt.Sprintf("Candlestick graph for %s (%s)", displayName, tokenID)

	graph := chart.Chart{
		Title:  title,
		Width:  r.width,
		Height: r.height,
		XAxis: chart.XAxis{
			Name:           "Date",
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01-02"),
			Range:          &chart.ContinuousRange{Min: xmin, Max: xmax},
		},
		YAxis: chart.YAxis{
			Name:           "Price (USD)",
			ValueFormatter: dollarValueFormatter,
			Range:          &chart.ContinuousRange{Min: ymin, Max: ymax},
		},
		Series: []chart.Series{series},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return entity.RenderedChart{}, fmt.Errorf("render candlestick chart for %s: %w", tokenID, err)
	}

	return entity.RenderedChart{
		Name:        displayName,
		Title:       title,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
	}, nil
}

// dollarValueFormatter はY軸の目盛りにドル記号を付けます。
func dollarValueFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("$%.2f", f)
	}
	return ""
}

// timeToXValue はエポックミリ秒をgo-chartのX値（エポックナノ秒のfloat64）に変換します。
func timeToXValue(ms int64) float64 {
	return float64(time.UnixMilli(ms).UTC().UnixNano())
}
