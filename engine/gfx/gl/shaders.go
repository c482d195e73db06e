package glbackend

// Built-in Blinn-Phong program. Positions and normals are transformed by
// sg_modelViewMatrix; lights are given in world space and moved to eye space
// with sg_cameraInverseMatrix.

const litVertexSource = `
#version 330 core
layout(location=0) in vec3 aPos;
layout(location=1) in vec3 aNormal;

uniform mat4 sg_modelViewMatrix;
uniform mat4 sg_projectionMatrix;
uniform float sg_pointSize;

out vec3 vEyePos;
out vec3 vEyeNormal;

void main() {
    vec4 eye = sg_modelViewMatrix * vec4(aPos, 1.0);
    vEyePos = eye.xyz;
    vEyeNormal = normalize(mat3(transpose(inverse(sg_modelViewMatrix))) * aNormal);
    gl_PointSize = sg_pointSize;
    gl_Position = sg_projectionMatrix * eye;
}
` + "\x00"

const litFragmentSource = `
#version 330 core
#define MAX_LIGHTS 8
#define DIRECTIONAL 0
#define POINT 1
#define SPOT 2

struct Light {
    int type;
    vec3 position;
    vec3 direction;
    vec4 ambient;
    vec4 diffuse;
    vec4 specular;
    float constant;
    float linear;
    float quadratic;
    float exponent;
    float cosCutoff;
};

struct Material {
    vec4 ambient;
    vec4 diffuse;
    vec4 specular;
    vec4 emission;
    float shininess;
    bool colorMaterial;
};

uniform mat4 sg_cameraInverseMatrix;
uniform int sg_lightCount;
uniform Light sg_light[MAX_LIGHTS];
uniform bool sg_useMaterials;
uniform Material sg_material;

in vec3 vEyePos;
in vec3 vEyeNormal;
out vec4 FragColor;

void main() {
    Material m = sg_material;
    if (!sg_useMaterials) {
        m.ambient = vec4(0.2, 0.2, 0.2, 1.0);
        m.diffuse = vec4(0.8, 0.8, 0.8, 1.0);
        m.specular = vec4(0.0);
        m.emission = vec4(0.0);
        m.shininess = 0.0;
    }
    if (sg_lightCount == 0) {
        FragColor = m.diffuse;
        return;
    }

    vec3 n = normalize(vEyeNormal);
    vec3 v = normalize(-vEyePos);
    vec4 color = m.emission;
    for (int i = 0; i < sg_lightCount; ++i) {
        Light l = sg_light[i];
        vec3 ld;
        float att = 1.0;
        if (l.type == DIRECTIONAL) {
            ld = normalize(-(mat3(sg_cameraInverseMatrix) * l.direction));
        } else {
            vec3 lp = (sg_cameraInverseMatrix * vec4(l.position, 1.0)).xyz;
            vec3 d = lp - vEyePos;
            float dist = length(d);
            ld = d / dist;
            att = 1.0 / max(l.constant + l.linear * dist + l.quadratic * dist * dist, 1e-4);
            if (l.type == SPOT) {
                vec3 sd = normalize(mat3(sg_cameraInverseMatrix) * l.direction);
                float c = dot(-ld, sd);
                att *= c < l.cosCutoff ? 0.0 : pow(c, l.exponent);
            }
        }
        float diff = max(dot(n, ld), 0.0);
        float spec = 0.0;
        if (diff > 0.0 && m.shininess > 0.0) {
            spec = pow(max(dot(n, normalize(ld + v)), 0.0), m.shininess);
        }
        color += l.ambient * m.ambient;
        color += att * (diff * l.diffuse * m.diffuse + spec * l.specular * m.specular);
    }
    FragColor = vec4(color.rgb, m.diffuse.a);
}
` + "\x00"
