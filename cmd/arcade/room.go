package main

import (
	"fmt"
	"path/filepath"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/light"
	"github.com/Carmen-Shannon/oxy-gl/engine/material"
	"github.com/Carmen-Shannon/oxy-gl/engine/scene"
	"github.com/Carmen-Shannon/oxy-gl/engine/texture"
	"github.com/go-gl/mathgl/mgl32"
)

// prepareRoom loads the scene's textures, materials, lights, and meshes, then
// composes the room's furniture from the primitive catalog. Texture files are
// resolved against assetRoot/textures.
func prepareRoom(s scene.Scene, assetRoot string) error {
	if err := loadRoomTextures(s, assetRoot); err != nil {
		return err
	}
	registerRoomMaterials(s)
	addRoomLights(s)
	loadRoomShapes(s)

	addWalls(s)
	addSodaCan(s)
	addFloorLamp(s)
	addBarChair(s)
	addArcadeCabinet(s)
	return nil
}

func loadRoomTextures(s scene.Scene, assetRoot string) error {
	imports := []common.ImportedTexture{
		{Tag: "floor", Path: "floor.png"},
		{Tag: "wallpaper", Path: "wallpaper.jpg"},
		{Tag: "ceiling", Path: "ceiling.jpg"},
		{Tag: "soda1", Path: "soda1.png"},
		{Tag: "soda2", Path: "soda2.png"},
		{Tag: "soda_top", Path: "sodatop.png"},
		{Tag: "tekken", Path: "tekken.jpg"},
		{Tag: "arcade2", Path: "arcade2.png"},
		{Tag: "coin_slot", Path: "coinslot.png"},
		{Tag: "test", Path: "test2.png"},
		{Tag: "testt", Path: "testt.jpg"},
		{Tag: "yellow", Path: "yellow.png"},
		{Tag: "linen", Path: "linen.jpg"},
		{Tag: "leather", Path: "leather.jpg"},
		{Tag: "metal2", Path: "metal2.jpg"},
		{Tag: "aluminum", Path: "aluminum.png"},
	}
	for _, imp := range imports {
		imp.Path = filepath.Join(assetRoot, "textures", imp.Path)
		if err := s.Textures().Load(imp); err != nil {
			return fmt.Errorf("failed to load texture %q: %w", imp.Tag, err)
		}
	}
	return nil
}

// registerRoomMaterials defines one material per texture so every surface
// gets its own specular response: dull plaster and linen at the low end,
// polished metal and the glassy screen at the high end.
func registerRoomMaterials(s scene.Scene) {
	type surface struct {
		tag       string
		diffuse   float32
		specular  float32
		shininess float32
	}
	surfaces := []surface{
		{"floor", 0.45, 0.12, 8},
		{"wallpaper", 0.45, 0.12, 32},
		{"ceiling", 0.45, 0.12, 8},
		{"soda1", 0.75, 0.72, 64},
		{"soda2", 0.75, 0.72, 64},
		{"soda_top", 0.75, 1.0, 128},
		{"tekken", 0.7, 0.8, 256},
		{"arcade2", 0.4, 0.3, 32},
		{"coin_slot", 0.3, 0.5, 32},
		{"test", 0.6, 0.5, 64},
		{"testt", 0.6, 0.5, 64},
		{"yellow", 0.75, 0.72, 64},
		{"linen", 0.7, 0.10, 8},
		{"leather", 0.8, 0.25, 16},
		{"metal2", 0.8, 0.25, 32},
		{"aluminum", 0.35, 0.35, 128},
	}
	for _, sf := range surfaces {
		s.Materials().Add(material.NewMaterial(
			material.WithTag(sf.tag),
			material.WithDiffuseColor(sf.diffuse, sf.diffuse, sf.diffuse),
			material.WithSpecularColor(sf.specular, sf.specular, sf.specular),
			material.WithShininess(sf.shininess),
		))
	}
}

// addRoomLights places two warm ceiling lights over the lamp corner, a cool
// purple accent over the cabinet, and a camera-following spotlight the player
// toggles with the left mouse button.
func addRoomLights(s scene.Scene) {
	s.AddLight(light.NewLight(light.LightTypePoint,
		light.WithPosition(14, 17, -5.5),
		light.WithAmbient(0.25, 0.25, 0.25),
		light.WithDiffuse(1.5, 1.5, 1.5),
		light.WithSpecular(1.0, 1.0, 1.0),
	))
	s.AddLight(light.NewLight(light.LightTypePoint,
		light.WithPosition(16, 22, -5.5),
		light.WithAmbient(0.25, 0.25, 0.25),
		light.WithDiffuse(1.5, 1.5, 1.5),
		light.WithSpecular(1.0, 1.0, 1.0),
	))
	s.AddLight(light.NewLight(light.LightTypePoint,
		light.WithPosition(0, 20, -4.3),
		light.WithAmbient(0.10, 0.10, 0.10),
		light.WithDiffuse(0.90, 0.50, 2.0),
		light.WithSpecular(0.80, 0.65, 1.0),
	))
	s.AddLight(light.NewLight(light.LightTypeSpot,
		light.WithAmbient(0.8, 0.8, 0.8),
		light.WithDiffuse(2.3, 2.3, 2.0),
		light.WithSpecular(1.6, 1.6, 1.6),
		light.WithAttenuation(1.0, 0.007, 0.0002),
		light.WithSpotCone(25, 35),
	))
}

// loadRoomShapes uploads one unit-sized mesh per primitive; objects size them
// through their model matrix.
func loadRoomShapes(s scene.Scene) {
	shapes := s.Shapes()
	shapes.LoadPlaneMesh(2, 2)
	shapes.LoadTaperedCylinderMesh(1, 1, 36, 0.5)
	shapes.LoadCylinderMesh(1, 1, 36)
	shapes.LoadSphereMesh(30, 30, 1)
	shapes.LoadBoxMesh()
	shapes.LoadPrismMesh(1, 1, 1)
	shapes.LoadTorusMesh(1, 0.06, 24, 8)
}

// addWalls builds the floor, ceiling, and the three papered walls. The planes
// face +y, so the walls stand up through a 90 degree x rotation.
func addWalls(s scene.Scene) {
	drawPlane := func(ctx scene.DrawContext) { ctx.Shapes.DrawPlaneMesh() }

	s.Add(scene.NewObject(
		scene.WithObjectName("floor"),
		scene.WithScale(mgl32.Vec3{20, 1, 16}),
		scene.WithObjectPosition(mgl32.Vec3{0, 0, 6}),
		scene.WithTextureTag("floor"),
		scene.WithMaterialTag("floor"),
		scene.WithDraw(drawPlane),
	))
	s.Add(scene.NewObject(
		scene.WithObjectName("ceiling"),
		scene.WithScale(mgl32.Vec3{20, 1, 16}),
		scene.WithObjectPosition(mgl32.Vec3{0, 28, 6}),
		scene.WithTextureTag("ceiling"),
		scene.WithMaterialTag("ceiling"),
		scene.WithDraw(drawPlane),
	))
	s.Add(scene.NewObject(
		scene.WithObjectName("center wall"),
		scene.WithScale(mgl32.Vec3{20, 1, 14}),
		scene.WithRotationDeg(mgl32.Vec3{90, 0, 0}),
		scene.WithObjectPosition(mgl32.Vec3{0, 14, -10}),
		scene.WithTextureTag("wallpaper"),
		scene.WithMaterialTag("wallpaper"),
		scene.WithDraw(drawPlane),
	))
	s.Add(scene.NewObject(
		scene.WithObjectName("right wall"),
		scene.WithScale(mgl32.Vec3{16, 1, 14}),
		scene.WithRotationDeg(mgl32.Vec3{90, -90, 0}),
		scene.WithObjectPosition(mgl32.Vec3{20, 14, 6}),
		scene.WithTextureTag("wallpaper"),
		scene.WithMaterialTag("wallpaper"),
		scene.WithDraw(drawPlane),
	))
	s.Add(scene.NewObject(
		scene.WithObjectName("left wall"),
		scene.WithScale(mgl32.Vec3{16, 1, 14}),
		scene.WithRotationDeg(mgl32.Vec3{90, 90, 0}),
		scene.WithObjectPosition(mgl32.Vec3{-20, 14, 6}),
		scene.WithTextureTag("wallpaper"),
		scene.WithMaterialTag("wallpaper"),
		scene.WithDraw(drawPlane),
	))
}

// addSodaCan stacks the can from five primitives: a flipped tapered base, the
// label cylinder, a half sphere shoulder, the lid, and a torus rim.
func addSodaCan(s scene.Scene) {
	s.Add(scene.NewObject(
		scene.WithObjectName("can base"),
		scene.WithScale(mgl32.Vec3{0.8, 0.4, 0.8}),
		scene.WithRotationDeg(mgl32.Vec3{180, 0, 0}),
		scene.WithObjectPosition(mgl32.Vec3{-8, 0.4, 4}),
		scene.WithTextureTag("aluminum"),
		scene.WithMaterialTag("aluminum"),
		scene.WithDraw(func(ctx scene.DrawContext) {
			ctx.Shapes.DrawTaperedCylinderMesh(true, false, true)
		}),
	))
	// The label texture is authored mirrored; flipping u rights it.
	s.Add(scene.NewObject(
		scene.WithObjectName("can body"),
		scene.WithScale(mgl32.Vec3{0.8, 2.0, 0.8}),
		scene.WithRotationDeg(mgl32.Vec3{0, 90, 0}),
		scene.WithObjectPosition(mgl32.Vec3{-8, 0.4, 4}),
		scene.WithTextureTag("soda1"),
		scene.WithMaterialTag("soda1"),
		scene.WithUVScale(mgl32.Vec2{-1, 1}),
		scene.WithDraw(func(ctx scene.DrawContext) {
			ctx.Shapes.DrawCylinderMesh(false, false, true)
		}),
	))
	s.Add(scene.NewObject(
		scene.WithObjectName("can shoulder"),
		scene.WithScale(mgl32.Vec3{0.8, 0.3, 0.8}),
		scene.WithObjectPosition(mgl32.Vec3{-8, 2.4, 4}),
		scene.WithTextureTag("soda2"),
		scene.WithMaterialTag("soda2"),
		scene.WithDraw(func(ctx scene.DrawContext) {
			ctx.Shapes.DrawHalfSphereMesh()
		}),
	))
	s.Add(scene.NewObject(
		scene.WithObjectName("can lid"),
		scene.WithScale(mgl32.Vec3{0.6, 0.03, 0.6}),
		scene.WithObjectPosition(mgl32.Vec3{-8, 2.67, 4}),
		scene.WithTextureTag("soda_top"),
		scene.WithMaterialTag("soda_top"),
		scene.WithDraw(func(ctx scene.DrawContext) {
			ctx.Shapes.DrawCylinderMesh(false, true, true)
		}),
	))
	s.Add(scene.NewObject(
		scene.WithObjectName("can rim"),
		scene.WithScale(mgl32.Vec3{0.6, 0.6, 1.0}),
		scene.WithRotationDeg(mgl32.Vec3{90, 0, 0}),
		scene.WithObjectPosition(mgl32.Vec3{-8, 2.71, 4}),
		scene.WithTextureTag("aluminum"),
		scene.WithMaterialTag("aluminum"),
		scene.WithDraw(func(ctx scene.DrawContext) {
			ctx.Shapes.DrawTorusMesh()
		}),
	))
}

// addFloorLamp builds the tall corner lamp: stacked cylinders for the base,
// pole, and socket, tori for the hoops, and an open tapered cylinder for the
// shade so light spills out of the top.
func addFloorLamp(s scene.Scene) {
	drawCylinder := func(ctx scene.DrawContext) {
		ctx.Shapes.DrawCylinderMesh(true, true, true)
	}
	drawTorus := func(ctx scene.DrawContext) { ctx.Shapes.DrawTorusMesh() }

	s.Add(scene.NewObject(
		scene.WithObjectName("lamp base"),
		scene.WithScale(mgl32.Vec3{2.7, 0.3, 2.7}),
		scene.WithObjectPosition(mgl32.Vec3{15, 0, -5.5}),
		scene.WithTextureTag("leather"),
		scene.WithMaterialTag("leather"),
		scene.WithDraw(drawCylinder),
	))
	s.Add(scene.NewObject(
		scene.WithObjectName("lamp base cap"),
		scene.WithScale(mgl32.Vec3{0.7, 0.5, 0.7}),
		scene.WithObjectPosition(mgl32.Vec3{15, 0.3, -5.5}),
		scene.WithTextureTag("metal2"),
		scene.WithMaterialTag("metal2"),
		scene.WithDraw(func(ctx scene.DrawContext) {
			ctx.Shapes.DrawTaperedCylinderMesh(false, true, true)
		}),
	))
	s.Add(scene.NewObject(
		scene.WithObjectName("lamp pole"),
		scene.WithScale(mgl32.Vec3{0.3, 15, 0.3}),
		scene.WithObjectPosition(mgl32.Vec3{15, 0.8, -5.5}),
		scene.WithTextureTag("leather"),
		scene.WithMaterialTag("leather"),
		scene.WithDraw(drawCylinder),
	))
	s.Add(scene.NewObject(
		scene.WithObjectName("lamp socket"),
		scene.WithScale(mgl32.Vec3{0.3, 0.7, 0.3}),
		scene.WithObjectPosition(mgl32.Vec3{15, 15.8, -5.5}),
		scene.WithTextureTag("metal2"),
		scene.WithMaterialTag("metal2"),
		scene.WithDraw(drawCylinder),
	))
	s.Add(scene.NewObject(
		scene.WithObjectName("lamp switch"),
		scene.WithScale(mgl32.Vec3{0.05, 0.3, 0.05}),
		scene.WithRotationDeg(mgl32.Vec3{0, 0, 90}),
		scene.WithObjectPosition(mgl32.Vec3{14.8, 16.2, -5.5}),
		scene.WithTextureTag("metal2"),
		scene.WithMaterialTag("metal2"),
		scene.WithDraw(drawCylinder),
	))
	s.Add(scene.NewObject(
		scene.WithObjectName("lamp bulb"),
		scene.WithScale(mgl32.Vec3{0.5, 1.2, 0.5}),
		scene.WithObjectPosition(mgl32.Vec3{15, 16.5, -5.5}),
		scene.WithTextureTag("aluminum"),
		scene.WithMaterialTag("aluminum"),
		scene.WithDraw(drawCylinder),
	))
	s.Add(scene.NewObject(
		scene.WithObjectName("lamp hoop"),
		scene.WithScale(mgl32.Vec3{1.0, 1.4, 1.0}),
		scene.WithRotationDeg(mgl32.Vec3{0, 90, 0}),
		scene.WithObjectPosition(mgl32.Vec3{15, 17.7, -5.5}),
		scene.WithTextureTag("metal2"),
		scene.WithMaterialTag("metal2"),
		scene.WithDraw(drawTorus),
	))
	s.Add(scene.NewObject(
		scene.WithObjectName("lamp finial"),
		scene.WithScale(mgl32.Vec3{0.15, 0.25, 0.15}),
		scene.WithObjectPosition(mgl32.Vec3{15, 19.4, -5.5}),
		scene.WithTextureTag("metal2"),
		scene.WithMaterialTag("metal2"),
		scene.WithDraw(func(ctx scene.DrawContext) {
			ctx.Shapes.DrawSphereMesh()
		}),
	))
	// Open at both ends so the bulb lights the ceiling.
	s.Add(scene.NewObject(
		scene.WithObjectName("lamp shade"),
		scene.WithScale(mgl32.Vec3{2.7, 3.7, 2.5}),
		scene.WithObjectPosition(mgl32.Vec3{15, 15.8, -5.5}),
		scene.WithTextureTag("linen"),
		scene.WithMaterialTag("linen"),
		scene.WithDraw(func(ctx scene.DrawContext) {
			ctx.Shapes.DrawTaperedCylinderMesh(false, false, true)
		}),
	))
	s.Add(scene.NewObject(
		scene.WithObjectName("lamp shade hoop"),
		scene.WithScale(mgl32.Vec3{1.4, 0.4, 0.8}),
		scene.WithRotationDeg(mgl32.Vec3{90, 0, 0}),
		scene.WithObjectPosition(mgl32.Vec3{15, 19, -5.5}),
		scene.WithTextureTag("metal2"),
		scene.WithMaterialTag("metal2"),
		scene.WithDraw(drawTorus),
	))
}

// addBarChair builds the stool: four splayed cylinder legs, a torus foot
// rest, and a padded cylinder seat.
func addBarChair(s scene.Scene) {
	drawCylinder := func(ctx scene.DrawContext) {
		ctx.Shapes.DrawCylinderMesh(true, true, true)
	}

	type leg struct {
		name     string
		rotation mgl32.Vec3
		position mgl32.Vec3
	}
	legs := []leg{
		{"chair leg front", mgl32.Vec3{-9, 0, 0}, mgl32.Vec3{0, 0, 6}},
		{"chair leg right", mgl32.Vec3{0, 0, 9}, mgl32.Vec3{3, 0, 3}},
		{"chair leg back", mgl32.Vec3{9, 0, 0}, mgl32.Vec3{0, 0, 0}},
		{"chair leg left", mgl32.Vec3{0, 0, -9}, mgl32.Vec3{-3, 0, 3}},
	}
	for _, l := range legs {
		s.Add(scene.NewObject(
			scene.WithObjectName(l.name),
			scene.WithScale(mgl32.Vec3{0.2, 6, 0.2}),
			scene.WithRotationDeg(l.rotation),
			scene.WithObjectPosition(l.position),
			scene.WithTextureTag("metal2"),
			scene.WithMaterialTag("metal2"),
			scene.WithDraw(drawCylinder),
		))
	}
	s.Add(scene.NewObject(
		scene.WithObjectName("chair foot rest"),
		scene.WithScale(mgl32.Vec3{2.25, 2.25, 3.6}),
		scene.WithRotationDeg(mgl32.Vec3{90, 0, 0}),
		scene.WithObjectPosition(mgl32.Vec3{0, 3, 3}),
		scene.WithTextureTag("metal2"),
		scene.WithMaterialTag("metal2"),
		scene.WithDraw(func(ctx scene.DrawContext) {
			ctx.Shapes.DrawTorusMesh()
		}),
	))
	s.Add(scene.NewObject(
		scene.WithObjectName("chair seat"),
		scene.WithScale(mgl32.Vec3{2.5, 0.7, 2.5}),
		scene.WithObjectPosition(mgl32.Vec3{0, 5.95, 3}),
		scene.WithTextureTag("leather"),
		scene.WithMaterialTag("leather"),
		scene.WithDraw(drawCylinder),
	))
}

// addArcadeCabinet builds the cabinet against the back wall: the boxed body
// with prism bevels, the recessed marquee and screen, side trims, and the
// joystick and buttons on the tilted control deck.
func addArcadeCabinet(s scene.Scene) {
	drawBox := func(ctx scene.DrawContext) { ctx.Shapes.DrawBoxMesh() }
	drawPlane := func(ctx scene.DrawContext) { ctx.Shapes.DrawPlaneMesh() }
	drawPrism := func(ctx scene.DrawContext) { ctx.Shapes.DrawPrismMesh() }
	drawCylinder := func(ctx scene.DrawContext) {
		ctx.Shapes.DrawCylinderMesh(true, true, true)
	}

	s.Add(scene.NewObject(
		scene.WithObjectName("cabinet base"),
		scene.WithScale(mgl32.Vec3{9, 9.1, 7}),
		scene.WithObjectPosition(mgl32.Vec3{0, 4.6, -6}),
		scene.WithTextureTag("test"),
		scene.WithMaterialTag("test"),
		scene.WithDraw(drawBox),
	))
	s.Add(scene.NewObject(
		scene.WithObjectName("coin slot"),
		scene.WithScale(mgl32.Vec3{3, 1, 3}),
		scene.WithRotationDeg(mgl32.Vec3{90, 0, 0}),
		scene.WithObjectPosition(mgl32.Vec3{0, 5, -2.495}),
		scene.WithTextureTag("coin_slot"),
		scene.WithMaterialTag("coin_slot"),
		scene.WithDraw(drawPlane),
	))
	s.Add(scene.NewObject(
		scene.WithObjectName("control box"),
		scene.WithScale(mgl32.Vec3{9, 1.7, 10}),
		scene.WithObjectPosition(mgl32.Vec3{0, 10, -4.5}),
		scene.WithTextureTag("testt"),
		scene.WithMaterialTag("testt"),
		scene.WithDraw(drawBox),
	))
	// Mirror the wood grain across the wedge so the seam at the apex
	// disappears, then restore plain repeat for everything drawn after.
	s.Add(scene.NewObject(
		scene.WithObjectName("control wedge"),
		scene.WithScale(mgl32.Vec3{10, 9, 1.5}),
		scene.WithRotationDeg(mgl32.Vec3{0, -90, -90}),
		scene.WithObjectPosition(mgl32.Vec3{0, 11.6, -4.5}),
		scene.WithTextureTag("test"),
		scene.WithMaterialTag("test"),
		scene.WithUVScale(mgl32.Vec2{2, 2}),
		scene.WithDraw(func(ctx scene.DrawContext) {
			_ = ctx.Textures.SetWrapMode("test", texture.WrapMirroredRepeat)
			ctx.Shapes.DrawPrismMesh()
			_ = ctx.Textures.SetWrapMode("test", texture.WrapRepeat)
		}),
	))
	s.Add(scene.NewObject(
		scene.WithObjectName("screen wedge"),
		scene.WithScale(mgl32.Vec3{3, 9, 5}),
		scene.WithRotationDeg(mgl32.Vec3{0, 0, 90}),
		scene.WithObjectPosition(mgl32.Vec3{0, 12.35, -7}),
		scene.WithTextureTag("arcade2"),
		scene.WithMaterialTag("arcade2"),
		scene.WithDraw(drawPrism),
	))
	s.Add(scene.NewObject(
		scene.WithObjectName("screen wedge filler"),
		scene.WithScale(mgl32.Vec3{1.6, 9, 5}),
		scene.WithRotationDeg(mgl32.Vec3{0, -188, 90}),
		scene.WithObjectPosition(mgl32.Vec3{0, 13.495, -7}),
		scene.WithTextureTag("arcade2"),
		scene.WithMaterialTag("arcade2"),
		scene.WithDraw(drawPrism),
	))
	s.Add(scene.NewObject(
		scene.WithObjectName("screen housing"),
		scene.WithScale(mgl32.Vec3{9, 5.5, 5.1}),
		scene.WithRotationDeg(mgl32.Vec3{-1, 0, 0}),
		scene.WithObjectPosition(mgl32.Vec3{0, 16.635, -7}),
		scene.WithTextureTag("test"),
		scene.WithMaterialTag("test"),
		scene.WithDraw(drawBox),
	))
	s.Add(scene.NewObject(
		scene.WithObjectName("screen"),
		scene.WithScale(mgl32.Vec3{3.95, 1, 2.8}),
		scene.WithRotationDeg(mgl32.Vec3{89, 0, 0}),
		scene.WithObjectPosition(mgl32.Vec3{0, 16.67, -4.4}),
		scene.WithTextureTag("tekken"),
		scene.WithMaterialTag("tekken"),
		scene.WithDraw(drawPlane),
	))
	s.Add(scene.NewObject(
		scene.WithObjectName("marquee"),
		scene.WithScale(mgl32.Vec3{9, 2.5, 7}),
		scene.WithRotationDeg(mgl32.Vec3{-1, 0, 0}),
		scene.WithObjectPosition(mgl32.Vec3{0, 20.65, -6.1}),
		scene.WithTextureTag("testt"),
		scene.WithMaterialTag("testt"),
		scene.WithDraw(drawBox),
	))
	for _, x := range []float32{-4.20, 4.20} {
		s.Add(scene.NewObject(
			scene.WithObjectName("screen trim"),
			scene.WithScale(mgl32.Vec3{0.5, 0.6, 5.5}),
			scene.WithRotationDeg(mgl32.Vec3{89, 0, 0}),
			scene.WithObjectPosition(mgl32.Vec3{x, 16.68, -4.25}),
			scene.WithTextureTag("arcade2"),
			scene.WithMaterialTag("arcade2"),
			scene.WithDraw(drawBox),
		))
		s.Add(scene.NewObject(
			scene.WithObjectName("control trim"),
			scene.WithScale(mgl32.Vec3{0.5, 0.6, 5.4}),
			scene.WithRotationDeg(mgl32.Vec3{17, 0, 0}),
			scene.WithObjectPosition(mgl32.Vec3{x, 11.88, -2.0}),
			scene.WithTextureTag("arcade2"),
			scene.WithMaterialTag("arcade2"),
			scene.WithDraw(drawBox),
		))
	}

	// Control deck hardware sits tilted with the 17 degree panel.
	s.Add(scene.NewObject(
		scene.WithObjectName("joystick base"),
		scene.WithScale(mgl32.Vec3{1, 0.15, 1}),
		scene.WithRotationDeg(mgl32.Vec3{17, 0, 0}),
		scene.WithObjectPosition(mgl32.Vec3{-2.2, 11.45, -1.5}),
		scene.WithTextureTag("metal2"),
		scene.WithMaterialTag("metal2"),
		scene.WithDraw(drawCylinder),
	))
	s.Add(scene.NewObject(
		scene.WithObjectName("joystick rod"),
		scene.WithScale(mgl32.Vec3{0.1, 0.8, 0.1}),
		scene.WithRotationDeg(mgl32.Vec3{17, 0, 0}),
		scene.WithObjectPosition(mgl32.Vec3{-2.2, 11.6, -1.5}),
		scene.WithTextureTag("aluminum"),
		scene.WithMaterialTag("aluminum"),
		scene.WithDraw(drawCylinder),
	))
	s.Add(scene.NewObject(
		scene.WithObjectName("joystick ball"),
		scene.WithScale(mgl32.Vec3{0.4, 0.4, 0.4}),
		scene.WithRotationDeg(mgl32.Vec3{17, 0, 0}),
		scene.WithObjectPosition(mgl32.Vec3{-2.2, 12.7, -1.2}),
		scene.WithTextureTag("soda2"),
		scene.WithMaterialTag("soda2"),
		scene.WithDraw(func(ctx scene.DrawContext) {
			ctx.Shapes.DrawSphereMesh()
		}),
	))

	buttonBases := []mgl32.Vec3{
		{1.3, 11.35, -1.2},
		{3.0, 11.35, -1.2},
		{2.2, 11.75, -2.5},
	}
	for _, pos := range buttonBases {
		s.Add(scene.NewObject(
			scene.WithObjectName("button base"),
			scene.WithScale(mgl32.Vec3{0.5, 0.1, 0.5}),
			scene.WithRotationDeg(mgl32.Vec3{17, 0, 0}),
			scene.WithObjectPosition(pos),
			scene.WithTextureTag("yellow"),
			scene.WithMaterialTag("yellow"),
			scene.WithDraw(drawCylinder),
		))
	}
	buttonTops := []mgl32.Vec3{
		{1.3, 11.43, -1.15},
		{3.0, 11.43, -1.15},
		{2.2, 11.83, -2.45},
	}
	for _, pos := range buttonTops {
		s.Add(scene.NewObject(
			scene.WithObjectName("button cap"),
			scene.WithScale(mgl32.Vec3{0.3, 0.2, 0.3}),
			scene.WithRotationDeg(mgl32.Vec3{17, 0, 0}),
			scene.WithObjectPosition(pos),
			scene.WithTextureTag("yellow"),
			scene.WithMaterialTag("yellow"),
			scene.WithDraw(func(ctx scene.DrawContext) {
				ctx.Shapes.DrawHalfSphereMesh()
			}),
		))
	}
}
