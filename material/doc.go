/*
Package material assembles and writes material descriptions for packed
PBR texture sets.

A Material binds the packed mask map plus the auxiliary color, normal,
height and emission maps to named parameter slots with their default
scalar strengths. The package holds paths only and never inspects pixel
data.

Assembly example:

	m, err := material.Assemble(material.RoleSet{
		BaseColor: "rock_color.png",
		Normal:    "rock_normal.png",
	}, "rock_mask.png", nil)
	if err != nil {
		// handle error
	}

Writer example:

	out, err := material.Format(m, nil)
	if err != nil {
		// handle error
	}

Validator example:

	issues := material.Validate(m, nil)
	if len(issues) != 0 {
		// handle validation issues
	}
*/
package material
