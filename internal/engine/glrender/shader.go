package glrender

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// vertexSrc transforms vertices into clip space and hands the fragment
// stage world-space position and normal. Normals go through the
// dedicated normal matrix rather than the model matrix.
const vertexSrc = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;
uniform mat4 normalMatrix;

out vec3 fragPos;
out vec3 fragNormal;

void main() {
	vec4 worldPos = model * vec4(aPos, 1.0);
	fragPos = worldPos.xyz;
	fragNormal = mat3(normalMatrix) * aNormal;
	gl_Position = projection * view * worldPos;
}
` + "\x00"

// fragmentSrc shades with one directional light: ambient plus diffuse
// plus a Blinn-Phong highlight. Mirror materials get a tighter, stronger
// highlight than the shininess value alone would give.
const fragmentSrc = `
#version 410 core

in vec3 fragPos;
in vec3 fragNormal;

uniform vec3 color;
uniform float shininess;
uniform float mirror;
uniform vec3 lightDir;
uniform vec3 ambientColor;
uniform vec3 diffuseColor;
uniform vec3 viewPos;

out vec4 FragColor;

void main() {
	vec3 N = normalize(fragNormal);
	vec3 L = normalize(lightDir);
	vec3 V = normalize(viewPos - fragPos);

	float NdotL = max(dot(N, L), 0.0);
	vec3 ambient = ambientColor * color;
	vec3 diffuse = color * NdotL * diffuseColor;

	vec3 H = normalize(L + V);
	float specPower = mix(32.0, 96.0, mirror);
	float specStrength = mix(shininess, 1.0, mirror);
	float spec = pow(max(dot(N, H), 0.0), specPower) * specStrength;
	vec3 specular = diffuseColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);

	FragColor = vec4(ambient + diffuse + specular, 1.0);
}
` + "\x00"

// uniformLocations caches every uniform in the lit program. Locations
// are resolved once after linking.
type uniformLocations struct {
	model        int32
	view         int32
	projection   int32
	normalMatrix int32

	color     int32
	shininess int32
	mirror    int32

	lightDir     int32
	ambientColor int32
	diffuseColor int32
	viewPos      int32
}

func resolveUniforms(program uint32) uniformLocations {
	loc := func(name string) int32 {
		return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
	}
	return uniformLocations{
		model:        loc("model"),
		view:         loc("view"),
		projection:   loc("projection"),
		normalMatrix: loc("normalMatrix"),
		color:        loc("color"),
		shininess:    loc("shininess"),
		mirror:       loc("mirror"),
		lightDir:     loc("lightDir"),
		ambientColor: loc("ambientColor"),
		diffuseColor: loc("diffuseColor"),
		viewPos:      loc("viewPos"),
	}
}

// compileProgram compiles the vertex and fragment shaders and links them
// into a program.
func compileProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link failed: %s", log)
	}

	return program, nil
}

// compileShader compiles a shader from source.
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile failed: %s", log)
	}

	return shader, nil
}
