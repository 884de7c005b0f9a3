// Package playing provides the arena scene: it owns the controller session and
// drives it from live devices or a recorded replay.
package playing

import (
	"fmt"
	"image/color"
	"log/slog"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/younwookim/gladiator/internal/application/animation"
	"github.com/younwookim/gladiator/internal/application/replay"
	"github.com/younwookim/gladiator/internal/application/scene"
	"github.com/younwookim/gladiator/internal/application/state"
	"github.com/younwookim/gladiator/internal/application/system"
	"github.com/younwookim/gladiator/internal/domain/entity"
	"github.com/younwookim/gladiator/internal/infrastructure/config"
	"github.com/younwookim/gladiator/internal/infrastructure/world"
)

// Colors for rendering
var (
	colorBG      = color.RGBA{26, 22, 18, 255}
	colorGround  = color.RGBA{120, 100, 70, 255}
	colorWall    = color.RGBA{80, 80, 100, 255}
	colorProp    = color.RGBA{140, 110, 60, 255}
	colorTrigger = color.RGBA{100, 200, 200, 160}
	colorPlayer  = color.RGBA{100, 200, 100, 255}
	colorAir     = color.RGBA{200, 200, 100, 255}
	colorFacing  = color.RGBA{255, 255, 255, 255}
	colorCamera  = color.RGBA{100, 150, 255, 200}
	colorTarget  = color.RGBA{255, 120, 60, 255}
	colorAttack  = color.RGBA{255, 60, 60, 200}
)

const (
	sprintZoom   = 0.8
	zoomDuration = 0.4 // seconds
	snapshotTol  = 1e-6
)

// InputSource supplies one frame of input and the frame time to simulate it with.
// ok is false once the source is exhausted.
type InputSource interface {
	Next(dt float64) (in entity.Input, frameDT float64, ok bool)
}

type liveSource struct {
	input *system.InputSystem
}

func (s liveSource) Next(dt float64) (entity.Input, float64, bool) {
	return s.input.GetInput(), dt, true
}

type replaySource struct {
	replayer *replay.Replayer
}

// Next ignores the host frame time; recorded frames carry their own
func (s replaySource) Next(_ float64) (entity.Input, float64, bool) {
	return s.replayer.Next()
}

// Options configure optional collaborators of the scene
type Options struct {
	RecordPath string             // record live input and save it here on exit
	Replay     *replay.ReplayData // drive the scene from a recording instead of devices
	Source     InputSource        // overrides both live devices and Replay
	Loader     *config.Loader     // required for hot reload
	Watcher    *config.Watcher    // hot reload trigger
	Logger     *slog.Logger
}

// Playing is the arena scene
type Playing struct {
	config *config.GameConfig
	loader *config.Loader
	logger *slog.Logger

	world      *world.World
	character  *entity.Character
	controller *system.Controller
	animator   *animation.Animator
	rig        *system.CameraRig
	stepper    *system.FixedStepper
	popularity *entity.Popularity

	inputSystem *system.InputSystem
	source      InputSource
	live        bool
	pending     entity.Input
	state       state.GameState

	replayData *replay.ReplayData
	recorder   *replay.Recorder
	recordPath string
	watcher    *config.Watcher

	zoom      float64
	zoomTween *gween.Tween

	screenW   int
	screenH   int
	frames    int
	lastSteps int
	lastFrame system.Frame
}

// New creates the arena scene with the character at the arena spawn
func New(cfg *config.GameConfig, arena *world.World, opts Options) (*Playing, error) {
	if cfg == nil || arena == nil {
		return nil, fmt.Errorf("playing: config and arena are required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	spawn, spawnYaw := arena.Spawn()
	p := &Playing{
		config:      cfg,
		loader:      opts.Loader,
		logger:      logger.With("scene", "playing"),
		world:       arena,
		character:   entity.NewCharacter(spawn, spawnYaw),
		popularity:  entity.NewPopularity(cfg.Popularity.Initial, cfg.Popularity.Max),
		inputSystem: system.NewInputSystem(inputConfig(cfg)),
		state:       state.StatePlaying,
		watcher:     opts.Watcher,
		recordPath:  opts.RecordPath,
		zoom:        1,
		screenW:     cfg.Display.ScreenWidth,
		screenH:     cfg.Display.ScreenHeight,
	}
	if err := p.build(cfg, spawnYaw); err != nil {
		return nil, err
	}

	switch {
	case opts.Source != nil:
		p.source = opts.Source
	case opts.Replay != nil:
		p.replayData = opts.Replay
		p.source = replaySource{replayer: replay.NewReplayer(*opts.Replay)}
		p.state = state.StateReplaying
		p.logger.Info("replay loaded", "frames", len(opts.Replay.Frames), "arena", opts.Replay.Arena)
	default:
		p.source = liveSource{input: p.inputSystem}
		p.live = true
	}

	if opts.RecordPath != "" && p.replayData == nil {
		p.recorder = replay.NewRecorder(cfg.Arena.Map, cfg.Ticks.FixedRate)
		p.logger.Info("recording enabled", "path", opts.RecordPath)
	}
	return p, nil
}

// build creates the controller session for cfg around the existing character
func (p *Playing) build(cfg *config.GameConfig, cameraYaw float64) error {
	cc, err := cfg.ToControllerConfig()
	if err != nil {
		return err
	}

	animator := animation.NewAnimator(animation.Config{
		RollDuration:   cfg.Animation.RollDuration,
		AttackDuration: cfg.Animation.AttackDuration,
	})
	controller, err := system.NewController(cc, system.Dependencies{
		Spatial:   p.world,
		Animator:  animator,
		Character: p.character,
		Mover:     p.world,
		Logger:    p.logger,
	})
	if err != nil {
		return err
	}
	animator.Bind(controller)
	controller.AddStateListener(p.onStateChange)

	p.config = cfg
	p.controller = controller
	p.animator = animator
	p.rig = system.NewCameraRig(system.CameraConfig{
		TopClamp:      cfg.Camera.TopClamp,
		BottomClamp:   cfg.Camera.BottomClamp,
		AngleOverride: cfg.Camera.AngleOverride,
		Locked:        cfg.Camera.LockPosition,
	}, cameraYaw)
	p.stepper = system.NewFixedStepper(cfg.Ticks.FixedDelta(), cfg.Ticks.MaxFixedSteps)
	p.pending = entity.Input{}
	return nil
}

func inputConfig(cfg *config.GameConfig) system.InputConfig {
	return system.InputConfig{
		MouseSensitivity: cfg.Input.MouseSensitivity,
		StickSensitivity: cfg.Input.StickSensitivity,
		StickDeadzone:    cfg.Input.StickDeadzone,
	}
}

// Update advances the scene by one host frame (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	p.pollWatcher()

	if p.live {
		p.handleKeys()
	}
	if !p.state.Simulating() {
		return nil, nil
	}

	in, frameDT, ok := p.source.Next(dt)
	if !ok {
		p.finishReplay()
		return nil, nil
	}
	if p.recorder != nil {
		p.recorder.RecordFrame(frameDT, in)
	}
	p.Step(frameDT, in)

	return nil, nil // nil = stay on this scene
}

func (p *Playing) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.TogglePause()
	}
	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}
}

// Step runs one frame of the controller session with the given input.
// Fixed ticks run first, then the variable tick, the animator and the camera.
func (p *Playing) Step(dt float64, in entity.Input) system.Frame {
	p.pending.Merge(in)

	steps := p.stepper.Advance(dt)
	for range steps {
		p.controller.FixedUpdate()
	}
	frame := p.controller.Update(dt, &p.pending, p.rig.Yaw())
	p.animator.Update(dt)
	p.rig.Update(dt, &p.pending)

	if frame.AttackStarted {
		v := p.popularity.Add(1)
		p.logger.Debug("crowd cheers", "popularity", v)
	}
	if p.zoomTween != nil {
		z, done := p.zoomTween.Update(float32(dt))
		p.zoom = float64(z)
		if done {
			p.zoomTween = nil
		}
	}

	p.frames++
	p.lastSteps = steps
	p.lastFrame = frame
	return frame
}

func (p *Playing) onStateChange(prev, next entity.ActionState) {
	switch {
	case next == entity.StateSprint:
		p.zoomTo(sprintZoom)
	case prev == entity.StateSprint:
		p.zoomTo(1)
	}
}

func (p *Playing) zoomTo(target float64) {
	p.zoomTween = gween.New(float32(p.zoom), float32(target), zoomDuration, ease.OutQuad)
}

// TogglePause switches between playing and paused. Replays cannot be paused.
func (p *Playing) TogglePause() {
	switch p.state {
	case state.StatePlaying:
		p.state = state.StatePaused
	case state.StatePaused:
		p.state = state.StatePlaying
	}
}

func (p *Playing) finishReplay() {
	p.state = state.StateReplayDone
	got := p.Snapshot()
	if p.replayData == nil || p.replayData.Final == nil {
		p.logger.Info("replay finished", "frames", p.frames)
		return
	}
	if got.Matches(*p.replayData.Final, snapshotTol) {
		p.logger.Info("replay finished", "frames", p.frames, "match", true)
		return
	}
	p.logger.Warn("replay diverged",
		"frames", p.frames,
		"want", fmt.Sprintf("%+v", *p.replayData.Final),
		"got", fmt.Sprintf("%+v", got))
}

// Verify reports whether a finished replay ended where the recording did.
// It is false while the replay is still running or when the recording has no final snapshot.
func (p *Playing) Verify() bool {
	if p.state != state.StateReplayDone || p.replayData == nil || p.replayData.Final == nil {
		return false
	}
	return p.Snapshot().Matches(*p.replayData.Final, snapshotTol)
}

// pollWatcher reloads config or arena files that changed on disk
func (p *Playing) pollWatcher() {
	if p.watcher == nil || p.loader == nil {
		return
	}
	changed := p.watcher.Drain()
	if len(changed) == 0 {
		return
	}

	reloadArena := false
	for _, name := range changed {
		if filepath.Ext(name) == ".tmx" {
			reloadArena = true
		}
	}

	cfg, err := p.loader.LoadAll()
	if err != nil {
		p.logger.Warn("config reload failed, keeping previous", "error", err)
		return
	}
	if reloadArena {
		arena, err := world.LoadArena(p.loader.FS(), cfg.Arena.Map)
		if err != nil {
			p.logger.Warn("arena reload failed, keeping previous", "error", err)
		} else {
			p.world = arena
		}
	}
	if err := p.Reload(cfg); err != nil {
		p.logger.Warn("config rejected, keeping previous", "error", err)
		return
	}
	p.logger.Info("config reloaded", "files", len(changed), "arena", reloadArena)
}

// Reload rebuilds the controller session from cfg. The character keeps its
// transform and popularity keeps its value; in-flight rolls and attacks are dropped.
func (p *Playing) Reload(cfg *config.GameConfig) error {
	if err := p.build(cfg, p.rig.Yaw()); err != nil {
		return err
	}
	p.popularity = entity.NewPopularity(p.popularity.Value(), cfg.Popularity.Max)
	p.inputSystem = system.NewInputSystem(inputConfig(cfg))
	if p.live {
		p.source = liveSource{input: p.inputSystem}
	}
	if p.recorder != nil {
		p.logger.Warn("config changed while recording, replay may diverge")
	}
	return nil
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordPath
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	p.recorder.Finish(p.Snapshot())
	if err := p.recorder.Save(filename); err != nil {
		p.logger.Error("failed to save recording", "error", err)
	} else {
		p.logger.Info("recording saved", "path", filename, "frames", p.recorder.FrameCount())
	}
}

// Snapshot captures the character transform and action state
func (p *Playing) Snapshot() replay.Snapshot {
	return replay.SnapshotOf(p.character, p.controller.State())
}

// State returns the host session state
func (p *Playing) State() state.GameState {
	return p.state
}

func (p *Playing) Controller() *system.Controller {
	return p.controller
}

func (p *Playing) Character() *entity.Character {
	return p.character
}

func (p *Playing) Popularity() *entity.Popularity {
	return p.popularity
}

func (p *Playing) Rig() *system.CameraRig {
	return p.rig
}

// Recorder returns the active recorder, or nil
func (p *Playing) Recorder() *replay.Recorder {
	return p.recorder
}

// Frames returns how many frames have been simulated
func (p *Playing) Frames() int {
	return p.frames
}

func (p *Playing) Zoom() float64 {
	return p.zoom
}

func (p *Playing) Config() *config.GameConfig {
	return p.config
}

func (p *Playing) Animator() *animation.Animator {
	return p.animator
}

// LastFrame returns the outcome of the most recent Step
func (p *Playing) LastFrame() system.Frame {
	return p.lastFrame
}

// Draw renders a top-down debug view centered on the character (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	ppm := p.config.Display.PixelsPerM * p.zoom
	origin := p.character.Position
	cx, cy := float64(p.screenW)/2, float64(p.screenH)/2
	toScreen := func(v mgl64.Vec3) (float64, float64) {
		return cx + (v.X()-origin.X())*ppm, cy - (v.Z()-origin.Z())*ppm
	}

	p.drawArena(screen, ppm, toScreen)
	p.drawCharacter(screen, ppm, toScreen)
	p.drawUI(screen)

	if p.state == state.StatePaused {
		p.drawPauseOverlay(screen)
	}
}

func (p *Playing) drawArena(screen *ebiten.Image, ppm float64, toScreen func(mgl64.Vec3) (float64, float64)) {
	boxes := p.world.Boxes()

	// Floors first so walls and props stay visible on top
	for pass := 0; pass < 2; pass++ {
		for _, b := range boxes {
			floor := b.Layer == entity.LayerGround || b.Layer == entity.LayerDefault
			if (pass == 0) != floor {
				continue
			}
			x, y := toScreen(mgl64.Vec3{b.Min.X(), 0, b.Max.Z()})
			w := (b.Max.X() - b.Min.X()) * ppm
			h := (b.Max.Z() - b.Min.Z()) * ppm

			if b.Trigger {
				ebitenutil.DrawLine(screen, x, y, x+w, y, colorTrigger)
				ebitenutil.DrawLine(screen, x+w, y, x+w, y+h, colorTrigger)
				ebitenutil.DrawLine(screen, x+w, y+h, x, y+h, colorTrigger)
				ebitenutil.DrawLine(screen, x, y+h, x, y, colorTrigger)
				continue
			}
			ebitenutil.DrawRect(screen, x, y, w, h, layerColor(b.Layer))
		}
	}
}

func layerColor(l entity.Layer) color.Color {
	switch l {
	case entity.LayerWall:
		return colorWall
	case entity.LayerProp:
		return colorProp
	default:
		return colorGround
	}
}

func (p *Playing) drawCharacter(screen *ebiten.Image, ppm float64, toScreen func(mgl64.Vec3) (float64, float64)) {
	pos := p.character.Position
	vol := p.world.Volume(pos)
	radius := (vol.Max.X() - vol.Min.X()) / 2 * ppm

	if s := p.controller.RollSession(); s != nil {
		tx, ty := toScreen(s.Target)
		ebitenutil.DrawRect(screen, tx-2, ty-2, 4, 4, colorTarget)
	}

	body := colorPlayer
	if !p.controller.Motion().Grounded {
		body = colorAir
	}
	px, py := toScreen(pos)
	vector.DrawFilledCircle(screen, float32(px), float32(py), float32(radius), body, true)

	if p.controller.Attacking() {
		ax, ay := toScreen(pos.Add(p.character.Forward().Mul(0.8)))
		vector.DrawFilledCircle(screen, float32(ax), float32(ay), float32(radius*0.6), colorAttack, true)
	}

	fx, fy := toScreen(pos.Add(p.character.Forward().Mul(0.6)))
	ebitenutil.DrawLine(screen, px, py, fx, fy, colorFacing)

	camFwd := p.rig.Forward()
	flat := mgl64.Vec3{camFwd.X(), 0, camFwd.Z()}
	if flat.Len() > 1e-6 {
		kx, ky := toScreen(pos.Add(flat.Normalize().Mul(1.2)))
		ebitenutil.DrawLine(screen, px, py, kx, ky, colorCamera)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	motion := p.controller.Motion()
	pos := p.character.Position

	mode := "LIVE"
	switch {
	case p.replayData != nil:
		mode = "REPLAY"
	case p.recorder != nil:
		mode = fmt.Sprintf("REC %d", p.recorder.FrameCount())
	}

	text := fmt.Sprintf(
		"%s  %s\nState: %s\nPos: %.2f %.2f %.2f  Yaw: %.1f\nSpeed: %.2f  VV: %.2f  Grounded: %v\nCamera: %.1f / %.1f\nFixed steps: %d\nPopularity: %d",
		mode, p.state,
		p.controller.State(),
		pos.X(), pos.Y(), pos.Z(), p.character.Yaw,
		motion.Speed, motion.VerticalVelocity, motion.Grounded,
		p.rig.Yaw(), p.rig.Pitch(),
		p.lastSteps,
		p.popularity.Value(),
	)
	ebitenutil.DebugPrint(screen, text)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	// Semi-transparent overlay
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.logger.Info("arena entered",
		"position", fmt.Sprintf("%.2f,%.2f,%.2f", p.character.Position.X(), p.character.Position.Y(), p.character.Position.Z()),
		"popularity", p.popularity.Value())
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
	if p.watcher != nil {
		if err := p.watcher.Close(); err != nil {
			p.logger.Warn("failed to close watcher", "error", err)
		}
	}
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
