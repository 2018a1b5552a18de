package renderer

// Vertex shader - transforms vertices and forwards the per-corner
// texture coordinate of the active mapping.
const meshVertexShader = `
	#version 410 core

	layout (location = 0) in vec3 aPos;
	layout (location = 1) in vec3 aNormal;
	layout (location = 2) in vec2 aTexCoord;

	uniform mat4 uMVP;

	out vec3 vNormal;
	out vec2 vTexCoord;

	void main() {
		gl_Position = uMVP * vec4(aPos, 1.0);
		vNormal = aNormal;
		vTexCoord = aTexCoord;
	}
`

// Fragment shader - samples the mapping texture. Lambert shading is
// applied only in viewing mode; drawing mode must show canvas pixels
// unmodified.
const meshFragmentShader = `
	#version 410 core

	in vec3 vNormal;
	in vec2 vTexCoord;

	uniform sampler2D uTexture;
	uniform int uLit;
	uniform vec3 uLightDir;

	out vec4 FragColor;

	void main() {
		vec4 base = texture(uTexture, vTexCoord);
		if (uLit == 1) {
			float diffuse = max(dot(normalize(vNormal), normalize(uLightDir)), 0.0);
			float light = 0.35 + 0.65 * diffuse;
			base.rgb *= light;
		}
		FragColor = base;
	}
`
