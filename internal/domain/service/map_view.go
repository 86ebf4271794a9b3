package service

import (
	"sync"

	"github.com/google/uuid"

	"UrbanGuide-App/internal/domain/helper"
	"UrbanGuide-App/internal/domain/model"
)

// Cancelable 購読の解除
type Cancelable interface {
	Cancel()
}

type cancelFunc struct {
	once sync.Once
	fn   func()
}

func (c *cancelFunc) Cancel() { c.once.Do(c.fn) }

// PointAnnotationManager 地図上のポイントアノテーションを作成順に保持する
type PointAnnotationManager struct {
	mu          sync.RWMutex
	annotations []model.PointAnnotation
}

func NewPointAnnotationManager() *PointAnnotationManager {
	return &PointAnnotationManager{}
}

// Create アノテーションを作成し、採番したIDを含めて返す
func (m *PointAnnotationManager) Create(opts model.PointAnnotationOptions) model.PointAnnotation {
	annotation := model.PointAnnotation{
		ID:        uuid.New().String(),
		Point:     opts.Point,
		TextField: opts.TextField,
		IconImage: opts.IconImage,
	}

	m.mu.Lock()
	m.annotations = append(m.annotations, annotation)
	m.mu.Unlock()

	return annotation
}

func (m *PointAnnotationManager) DeleteAll() {
	m.mu.Lock()
	m.annotations = nil
	m.mu.Unlock()
}

func (m *PointAnnotationManager) List() []model.PointAnnotation {
	m.mu.RLock()
	defer m.mu.RUnlock()

	list := make([]model.PointAnnotation, len(m.annotations))
	copy(list, m.annotations)
	return list
}

func (m *PointAnnotationManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.annotations)
}

// MapView 地図の状態（アノテーション、カメラ、スタイル）
type MapView struct {
	annotations *PointAnnotationManager
	apiKey      string

	mu         sync.Mutex
	camera     model.CameraOptions
	style      model.Style
	nextSubID  int
	cameraSubs map[int]func(model.CameraOptions)
}

// NewMapView apiKey はヒートマップタイルURLに使用する
func NewMapView(apiKey string) *MapView {
	return &MapView{
		annotations: NewPointAnnotationManager(),
		apiKey:      apiKey,
		camera:      model.DefaultCamera(),
		style:       model.NewStyle(false, apiKey),
		cameraSubs:  make(map[int]func(model.CameraOptions)),
	}
}

func (v *MapView) Annotations() *PointAnnotationManager {
	return v.annotations
}

func (v *MapView) Camera() model.CameraOptions {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.camera
}

func (v *MapView) Style() model.Style {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.style
}

// SetCamera カメラを更新し、購読者に同期的に通知する
func (v *MapView) SetCamera(opts model.CameraOptions) {
	v.mu.Lock()
	v.camera = opts
	subs := make([]func(model.CameraOptions), 0, len(v.cameraSubs))
	for _, fn := range v.cameraSubs {
		subs = append(subs, fn)
	}
	v.mu.Unlock()

	for _, fn := range subs {
		fn(opts)
	}
}

// SubscribeCameraChanged カメラ変更の購読。Cancel で解除する
func (v *MapView) SubscribeCameraChanged(fn func(model.CameraOptions)) Cancelable {
	v.mu.Lock()
	id := v.nextSubID
	v.nextSubID++
	v.cameraSubs[id] = fn
	v.mu.Unlock()

	return &cancelFunc{fn: func() {
		v.mu.Lock()
		delete(v.cameraSubs, id)
		v.mu.Unlock()
	}}
}

// LoadStyle ヒートマップの有無に応じてスタイルを読み込み、カメラを初期位置に戻す
func (v *MapView) LoadStyle(withHeatmap bool) {
	v.mu.Lock()
	v.style = model.NewStyle(withHeatmap, v.apiKey)
	v.mu.Unlock()

	v.SetCamera(model.DefaultCamera())
}

// AddMarkers 既存のアノテーションを全削除してからマーカーを追加
func (v *MapView) AddMarkers(markers []model.MarkerData) {
	v.annotations.DeleteAll()
	for _, m := range markers {
		v.AddMarker(m)
	}
}

// AddMarker マーカー1件をアノテーションとして追加
func (v *MapView) AddMarker(marker model.MarkerData) model.PointAnnotation {
	return v.annotations.Create(model.PointAnnotationOptions{
		Point:     marker.Position,
		TextField: marker.Title,
		IconImage: model.MarkerIconImage,
	})
}

// LoadData データをマーカーとヒートマップに分けて地図に反映する
func (v *MapView) LoadData(beams []model.DataBeam) {
	heatmaps := helper.Heatmaps(beams)
	markers := helper.Markers(beams)

	v.LoadStyle(len(heatmaps) > 0)
	v.AddMarkers(markers)
}
