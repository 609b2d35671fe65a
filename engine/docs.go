/*
	scene-graph transform engine and its GPU-data-binding contract

	scene (object)
		group (shared transform anchor)
			mesh (renderable object)
				local matrix (composed through the parent chain)
				material
					program
					uniforms (re-uploaded every frame)
				geometry
					attributes (uploaded once)
		camera (object)
			projection matrix
			view matrix = inverse of the camera world matrix

	every frame: mutate transforms, ask the camera for view and
	projection, walk the scene, upload model/view/projection uniforms
	per visible mesh and issue the draw call through backend.API.
*/

package engine
