package renderer

const meshVertexShader = `#version 410 core

layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aTexCoord;

uniform mat4 uModel;
uniform mat4 uViewProj;
uniform mat3 uNormalMatrix;
uniform vec2 uUVRepeat;

out vec3 vWorldPos;
out vec3 vNormal;
out vec2 vUV;

void main() {
	vec4 world = uModel * vec4(aPosition, 1.0);
	vWorldPos = world.xyz;
	vNormal = uNormalMatrix * aNormal;
	vUV = aTexCoord * uUVRepeat;
	gl_Position = uViewProj * world;
}
`

const meshFragmentShader = `#version 410 core

in vec3 vWorldPos;
in vec3 vNormal;
in vec2 vUV;

uniform vec3 uColor;
uniform sampler2D uAlphaMap;
uniform int uHasAlphaMap;
uniform float uAlphaTest;

uniform int uLightCount;
uniform vec3 uLightPos[MAX_POINT_LIGHTS];
uniform vec3 uLightColor[MAX_POINT_LIGHTS];
uniform float uLightRange[MAX_POINT_LIGHTS];

out vec4 FragColor;

void main() {
	float alpha = 1.0;
	if (uHasAlphaMap == 1) {
		alpha *= texture(uAlphaMap, vUV).r;
	}
	if (alpha < uAlphaTest) {
		discard;
	}

	vec3 n = normalize(vNormal);
	if (!gl_FrontFacing) {
		n = -n;
	}

	vec3 lit = vec3(0.0);
	for (int i = 0; i < uLightCount; i++) {
		vec3 toLight = uLightPos[i] - vWorldPos;
		float dist = length(toLight);
		float atten = 1.0;
		if (uLightRange[i] > 0.0) {
			atten = clamp(1.0 - dist / uLightRange[i], 0.0, 1.0);
			atten *= atten;
		}
		lit += uLightColor[i] * max(dot(n, toLight / dist), 0.0) * atten;
	}

	FragColor = vec4(uColor * lit, alpha);
}
`
