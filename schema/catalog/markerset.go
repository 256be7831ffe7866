package catalog

import "github.com/meigma/recap/schema"

// markersetTypes registers level markers. A cLabsMarker places one noun and
// points at the data block matching the noun's type.
func markersetTypes(r *schema.Registry) {
	r.Struct("cLabsMarker", 0xC8,
		schema.Scalar("markerName", schema.TypeCharPtr, 0x00),
		schema.Scalar("markerId", schema.TypeUInt32, 0x04),
		schema.Scalar("nounDef", schema.TypeAsset, 0x08),
		schema.ArrayOf("assetOverrideId", schema.TypeUInt64, 0x10),
		schema.Scalar("pos", schema.TypeVector3, 0x1C),
		schema.Scalar("rotDegrees", schema.TypeVector3, 0x28),
		schema.Scalar("scale", schema.TypeFloat, 0x34),
		schema.Scalar("dimensions", schema.TypeVector3, 0x38),
		schema.Scalar("visible", schema.TypeBool, 0x44),
		schema.Scalar("castShadows", schema.TypeBool, 0x45),
		schema.Scalar("backFaceShadows", schema.TypeBool, 0x46),
		schema.Scalar("onlyShadows", schema.TypeBool, 0x47),
		schema.Scalar("createWithCollision", schema.TypeBool, 0x48),
		schema.Scalar("debugDisplayKDTree", schema.TypeBool, 0x49),
		schema.Scalar("debugDisplayNormals", schema.TypeBool, 0x4A),
		schema.EnumField("navMeshSetting", "cLabsMarker.navMeshSetting", 0x4C),
		schema.Scalar("ignoreOnXBox", schema.TypeBool, 0x50),
		schema.Scalar("ignoreOnMinSpec", schema.TypeBool, 0x51),
		schema.Scalar("ignoreOnPC", schema.TypeBool, 0x52),
		schema.Scalar("highSpecOnly", schema.TypeBool, 0x53),
		schema.Scalar("targetMarkerId", schema.TypeUInt32, 0x54),
		schema.Optional("volumeDef", "cVolumeDef", 0x58),
		schema.Optional("pointLightData", "cPointLightData", 0x5C),
		schema.Optional("spotLightData", "cSpotLightData", 0x60),
		schema.Optional("lineLightData", "cLineLightData", 0x64),
		schema.Optional("parallelLightData", "cParallelLightData", 0x68),
		schema.Optional("graphicsData", "cGraphicsData", 0x70),
		schema.Optional("cameraComponentData", "cCameraComponentData", 0x74),
		schema.Optional("animatorData", "cAnimatorData", 0x78),
		schema.Optional("animatedData", "cAnimatedData", 0x7C),
		schema.Optional("decalData", "cDecalData", 0x80),
		schema.Optional("waterData", "cWaterData", 0x84),
		schema.Optional("grassData", "cGrassData", 0x88),
		schema.Optional("mapCameraData", "cMapCameraData", 0x8C),
		schema.Optional("occluderData", "cOccluderData", 0x90),
		schema.Optional("splineCameraData", "cSplineCameraData", 0x94),
		schema.Optional("splineCameraNodeData", "cSplineCameraNodeBaseData", 0x98),
		schema.Inline("componentData", "SharedComponentData", 0x9C),
	)

	r.Struct("cAnimatedData", 0x4,
		schema.Scalar("animator", schema.TypeUInt32, 0x0),
	)
	r.Struct("cAnimatorData", 0x10,
		schema.Scalar("animator_name", schema.TypeCharPtr, 0x0),
		schema.Scalar("rate", schema.TypeFloat, 0x4),
		schema.Scalar("delay", schema.TypeFloat, 0x8),
		schema.Scalar("track", schema.TypeCharPtr, 0xC),
	)
	r.Struct("cCameraComponentData", 0x14,
		schema.Scalar("azimuth", schema.TypeFloat, 0x00),
		schema.Scalar("elevation", schema.TypeFloat, 0x04),
		schema.Scalar("distance", schema.TypeFloat, 0x08),
		schema.Scalar("transitionRate", schema.TypeFloat, 0x0C),
		schema.Scalar("duration", schema.TypeFloat, 0x10),
	)
	r.Struct("cMapCameraData", 0x54,
		schema.CharBuffer("name", 0x00, 0x40),
		schema.Scalar("fov", schema.TypeFloat, 0x40),
		schema.Scalar("aspect", schema.TypeFloat, 0x44),
		schema.Scalar("near", schema.TypeFloat, 0x48),
		schema.Scalar("far", schema.TypeFloat, 0x4C),
		schema.Scalar("show_bounds", schema.TypeBool, 0x50),
		schema.Scalar("show_pip", schema.TypeBool, 0x51),
	)
	r.Struct("cOccluderData", 0x2C,
		schema.CharBuffer("name", 0x00, 0x20),
		schema.Scalar("width", schema.TypeInt, 0x20),
		schema.Scalar("height", schema.TypeInt, 0x24),
		schema.Scalar("active", schema.TypeBool, 0x28),
	)
	r.Struct("cSplineCameraData", 0x84,
		schema.Inline("node", "cSplineCameraNodeBaseData", 0x00),
		schema.Scalar("duration", schema.TypeFloat, 0x80),
	)
	r.Struct("cSplineCameraNodeBaseData", 0x80,
		schema.CharBuffer("name", 0x00, 0x20),
		schema.Scalar("fov", schema.TypeFloat, 0x20),
		schema.Scalar("near", schema.TypeFloat, 0x24),
		schema.Scalar("far", schema.TypeFloat, 0x28),
		schema.Scalar("knot", schema.TypeInt, 0x2C),
		schema.Scalar("wait", schema.TypeFloat, 0x30),
		schema.Scalar("skipable", schema.TypeBool, 0x34),
		schema.CharBuffer("message", 0x35, 0x4B),
	)
}

func lightTypes(r *schema.Registry) {
	r.Struct("cPointLightData", 0x54,
		schema.Scalar("diffuse_color", schema.TypeVector3, 0x00),
		schema.Scalar("diffuse_lamp_power", schema.TypeFloat, 0x0C),
		schema.Scalar("specular_lamp_power", schema.TypeFloat, 0x10),
		schema.Scalar("inner_radius", schema.TypeFloat, 0x14),
		schema.Scalar("radius", schema.TypeFloat, 0x18),
		schema.Scalar("gobo", schema.TypeKey, 0x28),
		schema.Scalar("frames", schema.TypeInt, 0x2C),
		schema.Scalar("has_spec", schema.TypeBool, 0x30),
		schema.Scalar("enable", schema.TypeBool, 0x31),
		schema.Scalar("show_volume", schema.TypeBool, 0x32),
		schema.Scalar("wind_blown", schema.TypeBool, 0x34),
		schema.Scalar("wind_pivot_pos", schema.TypeVector3, 0x38),
		schema.Scalar("wind_pivot_rot", schema.TypeVector3, 0x44),
		schema.Scalar("wind_flex", schema.TypeFloat, 0x50),
	)
	r.Struct("cLineLightData", 0x54,
		schema.Scalar("diffuse_color", schema.TypeVector3, 0x00),
		schema.Scalar("diffuse_lamp_power", schema.TypeFloat, 0x0C),
		schema.Scalar("specular_lamp_power", schema.TypeFloat, 0x10),
		schema.Scalar("inner_radius", schema.TypeFloat, 0x14),
		schema.Scalar("radius", schema.TypeFloat, 0x18),
		schema.Scalar("length", schema.TypeFloat, 0x1C),
		schema.Scalar("gobo", schema.TypeKey, 0x28),
		schema.Scalar("frames", schema.TypeInt, 0x2C),
		schema.Scalar("has_spec", schema.TypeBool, 0x30),
		schema.Scalar("enable", schema.TypeBool, 0x31),
		schema.Scalar("show_volume", schema.TypeBool, 0x32),
		schema.Scalar("wind_blown", schema.TypeBool, 0x34),
		schema.Scalar("wind_pivot_pos", schema.TypeVector3, 0x38),
		schema.Scalar("wind_pivot_rot", schema.TypeVector3, 0x44),
		schema.Scalar("wind_flex", schema.TypeFloat, 0x50),
	)
	r.Struct("cSpotLightData", 0x60,
		schema.Scalar("diffuse_color", schema.TypeVector3, 0x00),
		schema.Scalar("diffuse_lamp_power", schema.TypeFloat, 0x0C),
		schema.Scalar("specular_lamp_power", schema.TypeFloat, 0x10),
		schema.Scalar("inner_radius", schema.TypeFloat, 0x14),
		schema.Scalar("radius", schema.TypeFloat, 0x18),
		schema.Scalar("falloff", schema.TypeFloat, 0x1C),
		schema.Scalar("length", schema.TypeFloat, 0x20),
		schema.Scalar("shadow_bias", schema.TypeFloat, 0x24),
		schema.Scalar("gobo", schema.TypeKey, 0x34),
		schema.Scalar("frames", schema.TypeInt, 0x38),
		schema.Scalar("has_spec", schema.TypeBool, 0x3C),
		schema.Scalar("enable", schema.TypeBool, 0x3D),
		schema.Scalar("shadow_caster", schema.TypeBool, 0x3E),
		schema.Scalar("show_frustum", schema.TypeBool, 0x3F),
		schema.Scalar("show_volume", schema.TypeBool, 0x40),
		schema.Scalar("wind_blown", schema.TypeBool, 0x41),
		schema.Scalar("wind_pivot_pos", schema.TypeVector3, 0x44),
		schema.Scalar("wind_pivot_rot", schema.TypeVector3, 0x50),
		schema.Scalar("wind_flex", schema.TypeFloat, 0x5C),
	)
	r.Struct("cParallelLightData", 0x54,
		schema.Scalar("diffuse_color", schema.TypeVector3, 0x18),
		schema.Scalar("diffuse_lamp_power", schema.TypeFloat, 0x24),
		schema.Scalar("specular_lamp_power", schema.TypeFloat, 0x28),
		schema.Scalar("fill_diffuse", schema.TypeVector3, 0x2C),
		schema.Scalar("fill_diffuse_power", schema.TypeFloat, 0x38),
		schema.Scalar("fill_specular_power", schema.TypeFloat, 0x3C),
		schema.Scalar("has_spec", schema.TypeBool, 0x40),
		schema.Scalar("enable", schema.TypeBool, 0x41),
		schema.EnumField("type", "cLabsMarker.type", 0x44),
		schema.Scalar("radius", schema.TypeFloat, 0x48),
		schema.Scalar("inner_radius", schema.TypeFloat, 0x4C),
		schema.EnumField("shadowed", "cLabsMarker.shadowed", 0x50),
	)
}

// environmentTypes registers level-wide graphics, water, grass and decal
// settings.
func environmentTypes(r *schema.Registry) {
	r.Struct("cGraphicsData", 0x518,
		schema.Scalar("camera_far_clip", schema.TypeFloat, 0x00),
		schema.Scalar("shadow_dir", schema.TypeVector3, 0x04),
		schema.Scalar("shadow_transparency", schema.TypeFloat, 0x10),
		schema.Scalar("shadow_zbias", schema.TypeFloat, 0x14),
		schema.Scalar("shadow_camera_z_fade", schema.TypeFloat, 0x18),

		schema.Scalar("shadow_view_left", schema.TypeFloat, 0x1C),
		schema.Scalar("shadow_view_top", schema.TypeFloat, 0x20),
		schema.Scalar("shadow_view_right", schema.TypeFloat, 0x24),
		schema.Scalar("shadow_view_bottom", schema.TypeFloat, 0x28),
		schema.Scalar("shadow_view_height", schema.TypeFloat, 0x2C),
		schema.Scalar("shadow_view_near", schema.TypeFloat, 0x30),
		schema.Scalar("shadow_view_far", schema.TypeFloat, 0x34),

		schema.Scalar("shadow_cull_left", schema.TypeFloat, 0x38),
		schema.Scalar("shadow_cull_top", schema.TypeFloat, 0x3C),
		schema.Scalar("shadow_cull_right", schema.TypeFloat, 0x40),
		schema.Scalar("shadow_cull_bottom", schema.TypeFloat, 0x44),
		schema.Scalar("shadow_cull_near", schema.TypeFloat, 0x48),
		schema.Scalar("shadow_cull_far", schema.TypeFloat, 0x4C),

		schema.Scalar("bloom", schema.TypeFloat, 0x50),
		schema.Scalar("brightness", schema.TypeFloat, 0x54),
		schema.Scalar("contrast", schema.TypeFloat, 0x58),
		schema.Scalar("saturation", schema.TypeFloat, 0x5C),
		schema.Scalar("hue", schema.TypeFloat, 0x60),
		schema.CharBuffer("color_adjust_texture", 0x64, 0x40),

		schema.Scalar("wind_dir", schema.TypeVector2, 0xA4),
		schema.Scalar("wind_str", schema.TypeFloat, 0xAC),

		schema.CharBuffer("cloud_shadow_texture", 0xB0, 0x40),
		schema.Scalar("cloud_shadow_direction", schema.TypeVector2, 0xF0),
		schema.Scalar("cloud_shadow_tile", schema.TypeVector2, 0xF8),
		schema.Scalar("cloud_shadow_rate", schema.TypeFloat, 0x100),
		schema.Scalar("cloud_shadow_start", schema.TypeFloat, 0x104),
		schema.Scalar("cloud_shadow_end", schema.TypeFloat, 0x108),
		schema.Scalar("cloud_shadow_alpha", schema.TypeFloat, 0x10C),

		schema.Scalar("fog_color", schema.TypeVector3, 0x110),
		schema.Scalar("fog_density", schema.TypeFloat, 0x11C),
		schema.Scalar("fog_amplitude", schema.TypeFloat, 0x120),
		schema.Scalar("fog_ground_start", schema.TypeFloat, 0x124),
		schema.Scalar("fog_ground_end", schema.TypeFloat, 0x128),
		schema.Scalar("fog_anim_rate", schema.TypeFloat, 0x12C),
		schema.Scalar("fog_strip_length", schema.TypeInt, 0x130),
		schema.Scalar("fog_dir", schema.TypeVector2, 0x134),
		schema.Scalar("fog_rate", schema.TypeFloat, 0x13C),
		schema.Scalar("fog_scale", schema.TypeVector2, 0x140),
		schema.CharBuffer("fog_texture", 0x148, 0x40),

		schema.Scalar("player_diffuse", schema.TypeFloat, 0x188),
		schema.Scalar("player_specular", schema.TypeFloat, 0x18C),
		schema.Scalar("player_desaturate", schema.TypeFloat, 0x190),
		schema.Scalar("player_emissive_level", schema.TypeFloat, 0x194),

		schema.Scalar("creature_diffuse", schema.TypeFloat, 0x198),
		schema.Scalar("creature_specular", schema.TypeFloat, 0x19C),
		schema.Scalar("creature_desaturate", schema.TypeFloat, 0x1A0),
		schema.Scalar("creature_emissive_level", schema.TypeFloat, 0x1A4),

		schema.Scalar("flora_diffuse", schema.TypeFloat, 0x1A8),
		schema.Scalar("flora_specular", schema.TypeFloat, 0x1AC),
		schema.Scalar("flora_desaturate", schema.TypeFloat, 0x1B0),
		schema.Scalar("flora_emissive_level", schema.TypeFloat, 0x1B4),

		schema.Scalar("mineral_diffuse", schema.TypeFloat, 0x1B8),
		schema.Scalar("mineral_specular", schema.TypeFloat, 0x1BC),
		schema.Scalar("mineral_desaturate", schema.TypeFloat, 0x1C0),
		schema.Scalar("mineral_emissive_level", schema.TypeFloat, 0x1C4),

		schema.Scalar("toonCenterMin", schema.TypeFloat, 0x1C8),
		schema.Scalar("toonAdjacentMin", schema.TypeFloat, 0x1CC),
		schema.Scalar("toonCornerMin", schema.TypeFloat, 0x1D0),
		schema.Scalar("toonCenterMax", schema.TypeFloat, 0x1D4),
		schema.Scalar("toonAdjacentMax", schema.TypeFloat, 0x1D8),
		schema.Scalar("toonCornerMax", schema.TypeFloat, 0x1DC),

		schema.Inline("water0", "cWaterSimData", 0x1E0),
		schema.Inline("water1", "cWaterSimData", 0x2A8),
		schema.Inline("water2", "cWaterSimData", 0x370),
		schema.Inline("water3", "cWaterSimData", 0x438),

		schema.Scalar("camera_blend", schema.TypeBool, 0x500),
		schema.Scalar("color_blend", schema.TypeBool, 0x501),
		schema.Scalar("shadow_blend", schema.TypeBool, 0x502),
		schema.Scalar("bloom_blend", schema.TypeBool, 0x503),
		schema.Scalar("wind_blend", schema.TypeBool, 0x504),
		schema.Scalar("cloud_blend", schema.TypeBool, 0x505),
		schema.Scalar("fog_blend", schema.TypeBool, 0x506),
		schema.Scalar("levels_blend", schema.TypeBool, 0x507),
		schema.Scalar("global", schema.TypeBool, 0x508),

		schema.Scalar("radius", schema.TypeFloat, 0x50C),
		schema.Scalar("inner_radius", schema.TypeFloat, 0x510),
		schema.Scalar("display_volume", schema.TypeBool, 0x514),
	)

	r.Struct("cWaterSimData", 0xC8,
		schema.Scalar("water_pos", schema.TypeVector2, 0x00),
		schema.Scalar("water_pos_vari", schema.TypeVector2, 0x08),
		schema.Scalar("water_size", schema.TypeVector2, 0x10),
		schema.Scalar("water_size_vari", schema.TypeVector2, 0x18),
		schema.Scalar("water_angle", schema.TypeFloat, 0x20),
		schema.Scalar("water_angle_vari", schema.TypeFloat, 0x24),
		schema.Scalar("water_intensity", schema.TypeFloat, 0x28),
		schema.Scalar("water_intensity_vari", schema.TypeFloat, 0x2C),
		schema.Scalar("water_freq", schema.TypeFloat, 0x30),
		schema.Scalar("water_wave_speed", schema.TypeFloat, 0x38),
		schema.Scalar("water_dampening", schema.TypeFloat, 0x3C),
		schema.Scalar("water_normal_scale", schema.TypeFloat, 0x40),
		schema.CharBuffer("water_brush", 0x44, 0x40),
		schema.CharBuffer("water_mask", 0x84, 0x40),
		schema.Scalar("water_blend", schema.TypeBool, 0xC4),
	)

	r.Struct("cWaterData", 0x1B0,
		schema.Scalar("size", schema.TypeVector2, 0x00),
		schema.CharBuffer("reflection", 0x08, 0x40),
		schema.CharBuffer("mask", 0x48, 0x40),
		schema.CharBuffer("normal_mask", 0x88, 0x40),
		schema.CharBuffer("splash_effect", 0xC8, 0x40),
		schema.CharBuffer("foam_effect", 0x108, 0x40),
		schema.Scalar("diffuseTint", schema.TypeVector3, 0x148),
		schema.Scalar("specularTint", schema.TypeVector3, 0x154),
		schema.Scalar("depthFogColor", schema.TypeVector3, 0x160),
		schema.Scalar("tile", schema.TypeVector2, 0x16C),
		schema.Scalar("normalLevel", schema.TypeFloat, 0x174),
		schema.Scalar("specExponent", schema.TypeFloat, 0x178),
		schema.Scalar("fresnel_bias", schema.TypeFloat, 0x17C),
		schema.Scalar("fresnel_power", schema.TypeFloat, 0x180),
		schema.Scalar("refract_level", schema.TypeFloat, 0x184),
		schema.Scalar("reflect_level", schema.TypeFloat, 0x188),
		schema.Scalar("depth_fog", schema.TypeFloat, 0x18C),
		schema.Scalar("refract_cue_bias", schema.TypeFloat, 0x190),
		schema.Scalar("refract_cue_scale", schema.TypeFloat, 0x194),
		schema.Scalar("reflect_cue_bias", schema.TypeFloat, 0x198),
		schema.Scalar("reflect_cue_scale", schema.TypeFloat, 0x19C),
		schema.Scalar("normal_cue_bias", schema.TypeFloat, 0x1A0),
		schema.Scalar("normal_cue_scale", schema.TypeFloat, 0x1A4),
		schema.Scalar("simulation", schema.TypeInt, 0x1A8),
		schema.Scalar("soft_edges", schema.TypeBool, 0x1AC),
		schema.Scalar("interactive", schema.TypeBool, 0x1AD),
		schema.Scalar("enable", schema.TypeBool, 0x1AE),
		schema.Scalar("display_volume", schema.TypeBool, 0x1AF),
	)

	r.Struct("cGrassData", 0x124,
		schema.CharBuffer("diffuse", 0x00, 0x40),
		schema.CharBuffer("normal", 0x40, 0x40),
		schema.CharBuffer("mat", 0x80, 0x40),
		schema.Scalar("diffuseTint", schema.TypeVector3, 0xC0),
		schema.Scalar("specularTint", schema.TypeVector3, 0xCC),
		schema.Scalar("size", schema.TypeVector3, 0xD8),
		schema.Scalar("offset", schema.TypeVector2, 0xE4),
		schema.Scalar("tile", schema.TypeVector2, 0xEC),
		schema.Scalar("normalLevel", schema.TypeFloat, 0xF4),
		schema.Scalar("flexibility", schema.TypeFloat, 0xF8),
		schema.Scalar("glowLevel", schema.TypeFloat, 0xFC),
		schema.Scalar("emissiveLevel", schema.TypeFloat, 0x100),
		schema.Scalar("density", schema.TypeFloat, 0x104),
		schema.Scalar("posVari", schema.TypeFloat, 0x108),
		schema.Scalar("heightVari", schema.TypeFloat, 0x10C),
		schema.Scalar("width", schema.TypeFloat, 0x110),
		schema.Scalar("bend", schema.TypeFloat, 0x114),
		schema.Scalar("bendVari", schema.TypeFloat, 0x118),
		schema.Scalar("seed", schema.TypeFloat, 0x11C),
		schema.Scalar("cast_shadows", schema.TypeBool, 0x120),
		schema.Scalar("enable", schema.TypeBool, 0x121),
		schema.Scalar("display_volume", schema.TypeBool, 0x122),
	)

	r.Struct("cDecalData", 0x10C,
		schema.Scalar("size", schema.TypeVector3, 0x00),
		schema.CharBuffer("material", 0x0C, 0x40),
		schema.Scalar("layer", schema.TypeInt, 0x4C),
		schema.CharBuffer("diffuse", 0x50, 0x40),
		schema.CharBuffer("normal", 0x90, 0x40),
		schema.Scalar("diffuseTint", schema.TypeVector3, 0xD0),
		schema.Scalar("opacity", schema.TypeFloat, 0xDC),
		schema.Scalar("specularTint", schema.TypeVector3, 0xE0),
		schema.Scalar("opacityNormal", schema.TypeFloat, 0xEC),
		schema.Scalar("tile", schema.TypeVector2, 0xF0),
		schema.Scalar("normalLevel", schema.TypeFloat, 0xF8),
		schema.Scalar("glowLevel", schema.TypeFloat, 0xFC),
		schema.Scalar("emissiveLevel", schema.TypeFloat, 0x100),
		schema.Scalar("specExponent", schema.TypeFloat, 0x104),
		schema.Scalar("enable", schema.TypeBool, 0x108),
		schema.Scalar("display_volume", schema.TypeBool, 0x109),
	)
}
