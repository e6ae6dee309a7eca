package chartimg

import (
	"fmt"
	"math"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"chime_backend/internal/feature/tokens/domain/entity"
)

// 上昇・下降のローソクの色。
var (
	upColor   = chart.ColorGreen
	downColor = chart.ColorRed
)

// candleSeries はOHLC時系列をローソク足として描画するgo-chartのカスタムシリーズです。
// 1ポイントにつきヒゲ（高値〜安値の縦線）と実体（始値〜終値の矩形）を描きます。
type candleSeries struct {
	points []entity.OHLCPoint
}

// candleSeriesが必要なgo-chartインターフェースを実装していることをコンパイル時に検証します。
var (
	_ chart.Series                = (*candleSeries)(nil)
	_ chart.ValuesProvider        = (*candleSeries)(nil)
	_ chart.BoundedValuesProvider = (*candleSeries)(nil)
)

func newCandleSeries(points []entity.OHLCPoint) *candleSeries {
	return &candleSeries{points: points}
}

// GetName はシリーズ名を返します。
func (s *candleSeries) GetName() string {
	return "OHLC"
}

// GetStyle はシリーズのスタイルを返します。ゼロ値で描画は有効のままです。
func (s *candleSeries) GetStyle() chart.Style {
	return chart.Style{}
}

// GetYAxis はこのシリーズが主Y軸に対応することを示します。
func (s *candleSeries) GetYAxis() chart.YAxisType {
	return chart.YAxisPrimary
}

// Validate はシリーズが描画可能かを検証します。
func (s *candleSeries) Validate() error {
	if len(s.points) == 0 {
		return fmt.Errorf("candle series must have at least one point")
	}
	return nil
}

// Len はポイント数を返します。
func (s *candleSeries) Len() int {
	return len(s.points)
}

// GetValues は軸レンジ計算用に (時刻, 終値) を返します。
func (s *candleSeries) GetValues(index int) (float64, float64) {
	p := s.points[index]
	return timeToXValue(p.Time), p.Close
}

// GetBoundedValues は軸レンジ計算用に (時刻, 高値, 安値) を返します。
// ヒゲの先端までレンジに含めるために使います。
func (s *candleSeries) GetBoundedValues(index int) (float64, float64, float64) {
	p := s.points[index]
	return timeToXValue(p.Time), p.High, p.Low
}

// paddedBounds は軸レンジを返します。ローソクが端で切れないように横方向は
// ポイント間隔の半分、縦方向は5%の余白を取ります。1ポイントしかない場合は
// 横1日・縦1ドルの最低幅でゼロ幅レンジを回避します。
func (s *candleSeries) paddedBounds() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.MaxFloat64, math.MaxFloat64
	xmax, ymax = -math.MaxFloat64, -math.MaxFloat64

	for _, p := range s.points {
		x := timeToXValue(p.Time)
		xmin = math.Min(xmin, x)
		xmax = math.Max(xmax, x)
		ymin = math.Min(ymin, p.Low)
		ymax = math.Max(ymax, p.High)
	}

	xpad := float64(24 * time.Hour.Nanoseconds())
	if len(s.points) > 1 {
		xpad = (xmax - xmin) / float64(len(s.points)-1) / 2
	}
	xmin -= xpad
	xmax += xpad

	ypad := (ymax - ymin) * 0.05
	if ypad == 0 {
		ypad = 1
	}
	ymin -= ypad
	ymax += ypad
	return xmin, xmax, ymin, ymax
}

// Render はキャンバスにローソク足を描画します。
func (s *candleSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, _ chart.Style) {
	halfWidth := s.candleHalfWidth(canvasBox)

	for _, p := range s.points {
		x := canvasBox.Left + xrange.Translate(timeToXValue(p.Time))
		yHigh := canvasBox.Bottom - yrange.Translate(p.High)
		yLow := canvasBox.Bottom - yrange.Translate(p.Low)
		yOpen := canvasBox.Bottom - yrange.Translate(p.Open)
		yClose := canvasBox.Bottom - yrange.Translate(p.Close)

		color := upColor
		if p.Close < p.Open {
			color = downColor
		}

		// ヒゲ: 高値から安値への縦線
		r.SetStrokeColor(color)
		r.SetStrokeWidth(1)
		r.MoveTo(x, yHigh)
		r.LineTo(x, yLow)
		r.Stroke()

		// 実体: 始値と終値の間の矩形。ピクセル座標は上が小さい
		top := yOpen
		bottom := yClose
		if bottom < top {
			top, bottom = bottom, top
		}
		if bottom == top {
			// 同値（寄引同事線）は1pxの横線として描く
			bottom++
		}

		r.SetFillColor(color)
		r.SetStrokeColor(color)
		r.MoveTo(x-halfWidth, top)
		r.LineTo(x+halfWidth, top)
		r.LineTo(x+halfWidth, bottom)
		r.LineTo(x-halfWidth, bottom)
		r.Close()
		r.FillStroke()
	}
}

// candleHalfWidth はキャンバス幅とポイント数からローソク実体の半幅を計算します。
func (s *candleSeries) candleHalfWidth(canvasBox chart.Box) int {
	half := canvasBox.Width() / (len(s.points) * 3)
	if half < 1 {
		half = 1
	}
	if half > 8 {
		half = 8
	}
	return half
}
